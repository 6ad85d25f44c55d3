package model_test

import (
	"testing"

	"mykuliah/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Match(t *testing.T) {
	yes, no := true, false

	room := model.Room{
		ID:        "BPJKE",
		Name:      "Bilik Perbincangan JKE",
		Location:  "Tingkat Bawah (Depan Bilik KJKE)",
		Available: true,
	}

	tests := []struct {
		name   string
		filter model.Filter
		want   bool
	}{
		{name: "empty filter", filter: model.Filter{}, want: true},
		{name: "name substring ignores case", filter: model.Filter{Search: "perbincangan"}, want: true},
		{name: "location substring", filter: model.Filter{Search: "TINGKAT BAWAH"}, want: true},
		{name: "no match", filter: model.Filter{Search: "Dewan"}, want: false},
		{name: "available only", filter: model.Filter{Available: &yes}, want: true},
		{name: "unavailable only", filter: model.Filter{Available: &no}, want: false},
		{name: "search and availability", filter: model.Filter{Search: "JKE", Available: &no}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(room))
		})
	}
}

func TestCategories_Order(t *testing.T) {
	assert.Equal(t, []model.Category{model.CategoryHall, model.CategoryRoom, model.CategoryOther}, model.Categories())
}
