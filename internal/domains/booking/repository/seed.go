package repository

import (
	"context"
	"fmt"

	"mykuliah/internal/domains/booking/model"
	"mykuliah/internal/domains/booking/rules"
	"mykuliah/shared/clock"
	"mykuliah/shared/constant"
	gModel "mykuliah/shared/model"
	"mykuliah/shared/timezone"

	"github.com/google/uuid"
)

// Seed populates a fresh store at startup.
type Seed func(ctx context.Context, repo Booking) error

// SeedEntry is a booking the store starts with on the current date.
type SeedEntry struct {
	RoomID   string
	RoomName string
	UserID   string
	UserName string
	Purpose  string
	Start    string
	End      string
}

// DefaultSeedEntries are the two demo reservations shown on first start.
func DefaultSeedEntries() []SeedEntry {
	return []SeedEntry{
		{
			RoomID:   "A201",
			RoomName: "Bilik Kuliah A201",
			UserID:   "U1",
			UserName: "Prof. Zakaria",
			Purpose:  "Matematik Diskret",
			Start:    "08:00",
			End:      "10:00",
		},
		{
			RoomID:   "DK2",
			RoomName: "Dewan Kuliah 2 (DK2)",
			UserID:   "U2",
			UserName: "Dr. Sarah",
			Purpose:  "Seminar Keusahawanan",
			Start:    "11:00",
			End:      "13:00",
		},
	}
}

// SeedToday inserts entries dated today through the same operating hours and
// conflict rules as the API. Entries are inserted in reverse so the first entry
// ends up first in the newest-first listing.
func SeedToday(hours rules.Hours, entries []SeedEntry) Seed {
	return func(ctx context.Context, repo Booking) error {
		today := timezone.Today()

		for i := len(entries) - 1; i >= 0; i-- {
			entry := entries[i]

			start, err := clock.Parse(entry.Start)
			if err != nil {
				return err
			}

			end, err := clock.Parse(entry.End)
			if err != nil {
				return err
			}

			if err = hours.Check(start, end); err != nil {
				return fmt.Errorf("seed booking for %s: %w", entry.RoomID, err)
			}

			booking := model.Booking{
				ID:        uuid.NewString(),
				RoomID:    entry.RoomID,
				RoomName:  entry.RoomName,
				UserID:    entry.UserID,
				UserName:  entry.UserName,
				Purpose:   entry.Purpose,
				Date:      today,
				StartTime: start,
				EndTime:   end,
				Status:    model.StatusApproved,
				Metadata: gModel.Metadata{
					CreatedAt: timezone.Now(),
					CreatedBy: constant.ContextSystem,
				},
			}

			if err = repo.Insert(ctx, booking, rules.NoConflict(booking)); err != nil {
				return fmt.Errorf("seed booking for %s: %w", entry.RoomID, err)
			}
		}

		return nil
	}
}

// DefaultSeed seeds DefaultSeedEntries on today's date.
func DefaultSeed(hours rules.Hours) Seed {
	return SeedToday(hours, DefaultSeedEntries())
}
