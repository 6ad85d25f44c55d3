package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"mykuliah/shared/constant"
	"mykuliah/shared/dto"
	"mykuliah/shared/model"
	"mykuliah/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, CreatedBy: "U1"})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, "U1", metadata.CreatedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:        "with all valid parameters",
			queryParams: map[string]string{"page": "2", "limit": "20", "sort_dir": "asc"},
			expected:    dto.QueryParams{Page: 2, Limit: 20, SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults when parameters are missing",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "no defaults leaves limit unset",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "invalid values are ignored",
			queryParams:    map[string]string{"page": "-1", "limit": "abc", "sort_dir": "sideways"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for k, v := range tt.queryParams {
				values.Set(k, v)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			var q dto.QueryParams
			q.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, q)
		})
	}
}

func TestQueryParams_Window(t *testing.T) {
	tests := []struct {
		name      string
		params    dto.QueryParams
		total     int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 10}, total: 25, wantStart: 0, wantEnd: 10},
		{name: "last partial page", params: dto.QueryParams{Page: 3, Limit: 10}, total: 25, wantStart: 20, wantEnd: 25},
		{name: "page past the end", params: dto.QueryParams{Page: 5, Limit: 10}, total: 25, wantStart: 25, wantEnd: 25},
		{name: "no limit returns everything", params: dto.QueryParams{}, total: 7, wantStart: 0, wantEnd: 7},
		{name: "zero page treated as first", params: dto.QueryParams{Limit: 2}, total: 7, wantStart: 0, wantEnd: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Window(tt.total)

			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
