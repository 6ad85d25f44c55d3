package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mykuliah/infras/otel/mocks"
	"mykuliah/internal/domains/booking/model"
	"mykuliah/internal/domains/booking/repository"
	"mykuliah/internal/domains/booking/rules"
	"mykuliah/shared/clock"
	gDto "mykuliah/shared/dto"
	"mykuliah/shared/timezone"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) repository.Booking {
	t.Helper()

	repo, err := repository.New(mocks.NewOtel(), nil)
	require.NoError(t, err)

	return repo
}

func newBooking(room, date, start, end, user string) model.Booking {
	day, err := timezone.ParseDate(date)
	if err != nil {
		panic(err)
	}

	return model.Booking{
		ID:        uuid.NewString(),
		RoomID:    room,
		UserID:    user,
		Date:      day,
		StartTime: clock.MustParse(start),
		EndTime:   clock.MustParse(end),
		Status:    model.StatusApproved,
	}
}

func TestInsert_NewestFirst(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first := newBooking("A201", "2024-06-01", "08:00", "10:00", "U1")
	second := newBooking("A202", "2024-06-01", "08:00", "10:00", "U2")

	require.NoError(t, repo.Insert(ctx, first, nil))
	require.NoError(t, repo.Insert(ctx, second, nil))

	all, err := repo.GetAll(ctx, gDto.QueryParams{}, model.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	asc, err := repo.GetAll(ctx, gDto.QueryParams{SortDir: gDto.SortDirAsc}, model.Filter{})
	require.NoError(t, err)
	assert.Equal(t, first.ID, asc[0].ID)
}

func TestInsert_GuardVeto(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	veto := errors.New("veto")

	err := repo.Insert(ctx, newBooking("A201", "2024-06-01", "08:00", "10:00", "U1"), func([]model.Booking) error {
		return veto
	})
	assert.ErrorIs(t, err, veto)

	count, err := repo.Count(ctx, model.Filter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInsert_DuplicateID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	b := newBooking("A201", "2024-06-01", "08:00", "10:00", "U1")

	require.NoError(t, repo.Insert(ctx, b, nil))
	assert.Error(t, repo.Insert(ctx, b, nil))
}

func TestInsert_ConcurrentSameSlot(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	const writers = 50

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)

	for range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			b := newBooking("A201", "2024-06-01", "09:00", "11:00", "U1")
			if repo.Insert(ctx, b, rules.NoConflict(b)) == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, accepted)

	count, err := repo.Count(ctx, model.Filter{RoomID: "A201"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	b := newBooking("A201", "2024-06-01", "08:00", "10:00", "U1")
	require.NoError(t, repo.Insert(ctx, b, nil))

	got, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	missing, err := repo.Get(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestGetAll_Filters(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	seed := []model.Booking{
		newBooking("A201", "2024-06-01", "08:00", "10:00", "U1"),
		newBooking("DK2", "2024-06-01", "11:00", "13:00", "U2"),
		newBooking("A201", "2024-06-02", "08:00", "10:00", "U2"),
	}
	for _, b := range seed {
		require.NoError(t, repo.Insert(ctx, b, nil))
	}

	tests := []struct {
		name   string
		filter model.Filter
		want   int
	}{
		{name: "no filter", filter: model.Filter{}, want: 3},
		{name: "date with all rooms", filter: model.Filter{Date: "2024-06-01", RoomID: "all"}, want: 2},
		{name: "date and room", filter: model.Filter{Date: "2024-06-01", RoomID: "A201"}, want: 1},
		{name: "room only", filter: model.Filter{RoomID: "A201"}, want: 2},
		{name: "owner only", filter: model.Filter{UserID: "U2"}, want: 2},
		{name: "owner on date", filter: model.Filter{UserID: "U2", Date: "2024-06-02"}, want: 1},
		{name: "no match", filter: model.Filter{Date: "2030-01-01"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := repo.GetAll(ctx, gDto.QueryParams{}, tt.filter)
			require.NoError(t, err)
			assert.Len(t, res, tt.want)

			count, err := repo.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestGetAll_Paging(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for _, start := range []string{"07:00", "08:00", "09:00", "10:00", "11:00"} {
		require.NoError(t, repo.Insert(ctx, newBooking("A201", "2024-06-01", start, "12:00", "U1"), nil))
	}

	page, err := repo.GetAll(ctx, gDto.QueryParams{Page: 2, Limit: 2}, model.Filter{})
	require.NoError(t, err)
	require.Len(t, page, 2)
	// newest first: 11, 10 | 09, 08 | 07
	assert.Equal(t, clock.MustParse("09:00"), page[0].StartTime)

	last, err := repo.GetAll(ctx, gDto.QueryParams{Page: 3, Limit: 2}, model.Filter{})
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	keep := newBooking("A201", "2024-06-01", "08:00", "10:00", "U1")
	drop := newBooking("A202", "2024-06-01", "08:00", "10:00", "U1")

	require.NoError(t, repo.Insert(ctx, keep, nil))
	require.NoError(t, repo.Insert(ctx, drop, nil))

	deleted, err := repo.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err := repo.GetAll(ctx, gDto.QueryParams{}, model.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}

func TestSeedToday(t *testing.T) {
	repo, err := repository.New(mocks.NewOtel(), repository.SeedToday(rules.DefaultHours, repository.DefaultSeedEntries()))
	require.NoError(t, err)

	all, err := repo.GetAll(context.Background(), gDto.QueryParams{}, model.Filter{Date: timezone.FormatDate(timezone.Today())})
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "A201", all[0].RoomID)
	assert.Equal(t, "U1", all[0].UserID)
	assert.Equal(t, "DK2", all[1].RoomID)
	assert.Equal(t, model.StatusApproved, all[1].Status)
}

func TestSeedToday_RejectsInvalidEntries(t *testing.T) {
	entries := []repository.SeedEntry{
		{RoomID: "A201", Start: "06:00", End: "08:00"},
	}

	_, err := repository.New(mocks.NewOtel(), repository.SeedToday(rules.DefaultHours, entries))
	assert.ErrorIs(t, err, rules.ErrOutsideOperatingHours)

	overlapping := []repository.SeedEntry{
		{RoomID: "A201", Start: "08:00", End: "10:00"},
		{RoomID: "A201", Start: "09:00", End: "11:00"},
	}

	_, err = repository.New(mocks.NewOtel(), repository.SeedToday(rules.DefaultHours, overlapping))
	assert.ErrorIs(t, err, rules.ErrSlotTaken)
}
