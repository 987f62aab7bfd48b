package engine

import (
	"testing"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

func TestGenerateTimeSlotsZeroJitterFollowsAnchors(t *testing.T) {
	// Intn(60) returning 30 cancels the -30 shift, so departures land
	// exactly on the regional anchors.
	rnd := &stubRand{
		ints:   []int{30, 0, 30, 0, 30, 0, 30, 0},
		floats: []float64{0, 0, 0, 0},
	}

	slots := GenerateTimeSlots(rnd, 4, entity.RouteRegional)
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}

	want := []string{"07:00", "09:30", "12:00", "15:30"}
	for i, slot := range slots {
		if slot.Departure != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], slot.Departure)
		}
		if slot.DelayMinutes != 0 {
			t.Errorf("slot %d: expected no delay, got %d", i, slot.DelayMinutes)
		}
		if slot.PriceMultiplier != 0.8 {
			t.Errorf("slot %d: expected multiplier 0.8, got %f", i, slot.PriceMultiplier)
		}
	}
}

func TestGenerateTimeSlotsSortedAndBounded(t *testing.T) {
	rnd := seededRand(42)

	slots := GenerateTimeSlots(rnd, 18, entity.RouteTrunk)
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	for i, slot := range slots {
		if i > 0 && slot.Departure < slots[i-1].Departure {
			t.Fatalf("slot %d departs %s before previous %s", i, slot.Departure, slots[i-1].Departure)
		}
		if slot.DelayMinutes < 0 || slot.DelayMinutes >= 30 {
			t.Errorf("slot %d: delay %d outside [0,30)", i, slot.DelayMinutes)
		}
		if slot.PriceMultiplier < 0.8 || slot.PriceMultiplier >= 1.2 {
			t.Errorf("slot %d: multiplier %f outside [0.8,1.2)", i, slot.PriceMultiplier)
		}
	}
}

func TestGenerateTimeSlotsUnknownClassFallsBackToRegional(t *testing.T) {
	rnd := &stubRand{ints: []int{30, 0}, floats: []float64{0}}

	slots := GenerateTimeSlots(rnd, 1, entity.RouteClass("charter"))
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Departure != "07:00" {
		t.Fatalf("expected regional anchor 07:00, got %s", slots[0].Departure)
	}
}

func TestAddMinutesToClockWrapsMidnight(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
		want    string
	}{
		{"23:30", 45, "00:15"},
		{"00:10", -30, "23:40"},
		{"12:00", 0, "12:00"},
		{"06:00", 90, "07:30"},
	}
	for _, tc := range cases {
		if got := addMinutesToClock(tc.clock, tc.minutes); got != tc.want {
			t.Errorf("%s%+d: expected %s, got %s", tc.clock, tc.minutes, tc.want, got)
		}
	}
}
