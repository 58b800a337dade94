package dto_test

import (
	"hms/shared/constant"
	"hms/shared/dto"
	"hms/shared/model"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt == "" || metadata.ModifiedAt == "" {
		t.Error("expected formatted timestamps")
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		wantContains string
		wantArg      string
	}{
		{
			name:         "eq",
			filter:       dto.Filter{Field: "status", Value: "RESERVED", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantContains: "bookings.status = :status",
			wantArg:      "status",
		},
		{
			name:         "like",
			filter:       dto.Filter{Field: "name", Value: "asha", Operator: dto.FilterOperatorLike, Table: "guests"},
			wantContains: "LOWER(guests.name) LIKE LOWER(:name)",
			wantArg:      "name",
		},
		{
			name:         "greater eq with custom arg name",
			filter:       dto.Filter{ArgName: "day_start", Field: "check_in", Value: "2026-09-01", Operator: dto.FilterOperatorGreaterEq, Table: "bookings"},
			wantContains: "bookings.check_in >= :day_start",
			wantArg:      "day_start",
		},
		{
			name:         "without table prefix",
			filter:       dto.Filter{Field: "id", Value: "some-id", Operator: dto.FilterOperatorEq},
			wantContains: "id = :id",
			wantArg:      "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if !strings.Contains(where, tt.wantContains) {
				t.Errorf("expected clause to contain %q, got %q", tt.wantContains, where)
			}

			if _, ok := args[tt.wantArg]; !ok {
				t.Errorf("expected args to carry %q, got %v", tt.wantArg, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "RESERVED", Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "room_id", Value: "room-id", Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}

	where, args := group.GetWhereClause()

	if !strings.Contains(where, "AND") {
		t.Errorf("expected AND between clauses, got %q", where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_In(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"CANCELLED", "CHECKED_OUT", "NO_SHOW"},
		Operator: dto.FilterOperatorIn,
		Table:    "bookings",
	}

	where, args := filter.GetWhereClause()

	if !strings.Contains(where, "IN (") {
		t.Errorf("expected IN clause, got %q", where)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 named args, got %d", len(args))
	}
}
