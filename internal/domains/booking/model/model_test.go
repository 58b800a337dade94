package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hms/internal/domains/booking/model"
)

func date(day int) time.Time {
	return time.Date(2026, time.September, day, 14, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "single night",
			checkIn:  date(1),
			checkOut: date(2),
			want:     1,
		},
		{
			name:     "three nights",
			checkIn:  date(1),
			checkOut: date(4),
			want:     3,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2026, time.September, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, time.September, 2, 20, 0, 0, 0, time.UTC),
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestBuildCode(t *testing.T) {
	assert.Equal(t, "HMS-2026-000005", model.BuildCode("HMS", 2026, 5))
	assert.Equal(t, "HMS-2026-123456", model.BuildCode("HMS", 2026, 123456))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name        string
		existingIn  time.Time
		existingOut time.Time
		newIn       time.Time
		newOut      time.Time
		want        bool
	}{
		{
			name:        "same range collides",
			existingIn:  date(1),
			existingOut: date(3),
			newIn:       date(1),
			newOut:      date(3),
			want:        true,
		},
		{
			name:        "partial overlap collides",
			existingIn:  date(1),
			existingOut: date(3),
			newIn:       date(2),
			newOut:      date(5),
			want:        true,
		},
		{
			name:        "contained range collides",
			existingIn:  date(1),
			existingOut: date(10),
			newIn:       date(3),
			newOut:      date(4),
			want:        true,
		},
		{
			name:        "back to back after is allowed",
			existingIn:  date(1),
			existingOut: date(3),
			newIn:       date(3),
			newOut:      date(5),
			want:        false,
		},
		{
			name:        "back to back before is allowed",
			existingIn:  date(3),
			existingOut: date(5),
			newIn:       date(1),
			newOut:      date(3),
			want:        false,
		},
		{
			name:        "disjoint ranges do not collide",
			existingIn:  date(1),
			existingOut: date(2),
			newIn:       date(10),
			newOut:      date(12),
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Overlaps(tt.existingIn, tt.existingOut, tt.newIn, tt.newOut)
			assert.Equal(t, tt.want, got)
		})
	}
}
