package engine

import (
	"fmt"
	"sort"

	"github.com/shandysiswandi/goflightfinder/internal/flightfinder/entity"
)

// timeAnchors are the scheduled-departure patterns per route class. The
// denser the route class, the more anchors it cycles through.
var timeAnchors = map[entity.RouteClass][]string{
	entity.RouteTrunk: {
		"06:00", "07:30", "09:00", "10:30", "12:00", "13:30",
		"15:00", "16:30", "18:00", "19:30", "21:00", "22:00",
	},
	entity.RouteMajor: {
		"06:30", "08:00", "10:00", "12:30", "14:30",
		"16:00", "18:30", "20:00", "21:30",
	},
	entity.RouteRegional:      {"07:00", "09:30", "12:00", "15:30", "18:00", "20:30"},
	entity.RouteInternational: {"02:00", "08:00", "14:00", "22:00"},
	entity.RouteLongHaul:      {"01:00", "10:00", "22:00"},
}

// GenerateTimeSlots produces flightCount departure slots for the class:
// anchor i mod len(anchors) with a uniform offset in [-30,+30) minutes
// wrapping across midnight, a delay in [0,30) minutes, and a price
// multiplier in [0.8,1.2). Slots come back sorted ascending by the
// formatted departure time.
func GenerateTimeSlots(rnd Rand, flightCount int, class entity.RouteClass) []entity.TimeSlot {
	anchors, ok := timeAnchors[class]
	if !ok {
		anchors = timeAnchors[entity.RouteRegional]
	}

	slots := make([]entity.TimeSlot, 0, flightCount)
	for i := 0; i < flightCount; i++ {
		anchor := anchors[i%len(anchors)]
		offset := rnd.Intn(60) - 30

		slots = append(slots, entity.TimeSlot{
			Departure:       addMinutesToClock(anchor, offset),
			DelayMinutes:    rnd.Intn(30),
			PriceMultiplier: 0.8 + rnd.Float64()*0.4,
		})
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Departure < slots[j].Departure
	})
	return slots
}

// addMinutesToClock shifts an "HH:MM" clock string by minutes, wrapping
// across midnight in both directions.
func addMinutesToClock(clock string, minutes int) string {
	var hours, mins int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hours, &mins); err != nil {
		return clock
	}

	total := (hours*60 + mins + minutes) % 1440
	if total < 0 {
		total += 1440
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
