package repository_test

import (
	"context"
	"testing"

	"mykuliah/infras/otel/mocks"
	"mykuliah/internal/domains/room/model"
	"mykuliah/internal/domains/room/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := repository.DefaultCatalog()

	require.Len(t, catalog, 10)

	seen := map[string]bool{}
	for _, room := range catalog {
		assert.False(t, seen[room.ID], "duplicate room id %s", room.ID)
		seen[room.ID] = true

		assert.Positive(t, room.Capacity)
		assert.NotEmpty(t, room.Category)
	}

	repo := repository.New(catalog, mocks.NewOtel())

	a302, err := repo.Get(context.Background(), "A302")
	require.NoError(t, err)
	assert.False(t, a302.Available)

	dk2, err := repo.Get(context.Background(), "DK2")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryHall, dk2.Category)
}

func TestGet(t *testing.T) {
	repo := repository.New(repository.DefaultCatalog(), mocks.NewOtel())

	room, err := repo.Get(context.Background(), "A201")
	require.NoError(t, err)
	assert.Equal(t, "Bilik Kuliah A201", room.Name)

	_, err = repo.Get(context.Background(), "Z999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGet_ReturnsCopy(t *testing.T) {
	repo := repository.New(repository.DefaultCatalog(), mocks.NewOtel())

	room, err := repo.Get(context.Background(), "A201")
	require.NoError(t, err)

	room.Facilities[0] = "changed"

	again, err := repo.Get(context.Background(), "A201")
	require.NoError(t, err)
	assert.Equal(t, "Projektor", again.Facilities[0])
}

func TestGetAll(t *testing.T) {
	repo := repository.New(repository.DefaultCatalog(), mocks.NewOtel())
	unavailable := false

	tests := []struct {
		name    string
		filter  model.Filter
		wantIDs []string
	}{
		{
			name:    "all rooms in catalog order",
			filter:  model.Filter{},
			wantIDs: []string{"DK2", "A201", "A202", "A301", "A302", "A303", "A304", "C203", "BPJKE", "BMJKE"},
		},
		{
			name:    "search by name",
			filter:  model.Filter{Search: "jke"},
			wantIDs: []string{"BPJKE", "BMJKE"},
		},
		{
			name:    "search by location",
			filter:  model.Filter{Search: "Tingkat 3"},
			wantIDs: []string{"A301", "A302", "A303", "A304"},
		},
		{
			name:    "unavailable rooms",
			filter:  model.Filter{Available: &unavailable},
			wantIDs: []string{"A302"},
		},
		{
			name:    "no match",
			filter:  model.Filter{Search: "makmal"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms, err := repo.GetAll(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(rooms))
			for _, room := range rooms {
				ids = append(ids, room.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
