package statistics

import (
	"testing"
	"time"
)

func TestDayBoundsKeepsLocation(t *testing.T) {
	loc := time.FixedZone("NZST", 12*60*60)
	at := time.Date(2026, time.August, 29, 23, 30, 0, 0, loc)

	start, end := dayBounds(at)

	want := time.Date(2026, time.August, 29, 0, 0, 0, 0, loc)
	if !start.Equal(want) {
		t.Fatalf("start = %v, want %v", start, want)
	}
	if start.Location() != loc {
		t.Fatalf("start location = %v, want %v", start.Location(), loc)
	}
	if got := end.Sub(start); got != 24*time.Hour {
		t.Fatalf("window = %v, want 24h", got)
	}

	// 23:30 NZST is 11:30 UTC; a UTC-midnight window would have already
	// rolled over to the next day.
	if !start.Before(at) || !end.After(at) {
		t.Fatalf("instant %v outside window [%v, %v)", at, start, end)
	}
}

func TestDayBoundsCoversWholeLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*60*60)
	early := time.Date(2026, time.January, 2, 0, 0, 1, 0, loc)
	late := time.Date(2026, time.January, 2, 23, 59, 59, 0, loc)

	earlyStart, _ := dayBounds(early)
	lateStart, _ := dayBounds(late)

	if !earlyStart.Equal(lateStart) {
		t.Fatalf("same local day produced different windows: %v vs %v", earlyStart, lateStart)
	}
}
