package shared_test

import (
	"hms/shared"
	"hms/shared/constant"
	"hms/shared/dto"
	"strings"
	"testing"
	"time"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "partial last page rounds up",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single page",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name  string    `db:"name"`
		Phone string    `db:"phone"`
		When  time.Time `db:"when"`
		Skip  string
	}

	req := updateRequest{Name: "Asha", Skip: "not tagged"}

	fields := shared.TransformFields(req, "test-user-id")

	if fields["name"] != "Asha" {
		t.Errorf("expected name to be Asha, got %v", fields["name"])
	}

	if _, ok := fields["phone"]; ok {
		t.Error("expected zero-valued phone to be dropped")
	}

	if _, ok := fields["when"]; ok {
		t.Error("expected zero-valued time to be dropped")
	}

	if fields[constant.FieldModifiedBy] != "test-user-id" {
		t.Errorf("expected modified_by to be test-user-id, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be stamped")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("some-id", "id", "bookings")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "id" || filter.Value != "some-id" || filter.Table != "bookings" {
		t.Errorf("unexpected filter: %+v", filter)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected eq operator, got %s", filter.Operator)
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("booking:get", "some-id")

	if key != "booking:get:some-id" {
		t.Errorf("expected booking:get:some-id, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 25, SortBy: "created_at", SortDir: "DESC"}
	filter := shared.FilterByID("some-id", "id", "bookings")

	key := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if !strings.HasPrefix(key, "booking:gets:") {
		t.Errorf("expected key to start with the prefix, got %s", key)
	}

	if !strings.Contains(key, "p2") || !strings.Contains(key, "l25") {
		t.Errorf("expected key to carry the page and limit, got %s", key)
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 3, Limit: 25}, filter)
	if key == other {
		t.Error("expected different pages to produce different keys")
	}
}
