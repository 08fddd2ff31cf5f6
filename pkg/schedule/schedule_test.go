package schedule

import (
	"testing"
	"time"
)

func ts(hour, min int, weekday time.Weekday) time.Time {
	// 2026-02-02 is a Monday; shift days to hit the wanted weekday.
	base := time.Date(2026, 2, 2, hour, min, 0, 0, time.UTC)
	offset := int(weekday) - int(base.Weekday())
	return base.AddDate(0, 0, offset)
}

func TestMatchCron(t *testing.T) {
	cases := []struct {
		expr string
		at   time.Time
		want bool
	}{
		{"* * * * *", ts(10, 30, time.Tuesday), true},
		{"0 6 * * 1", ts(6, 0, time.Monday), true},
		{"0 6 * * 1", ts(6, 0, time.Tuesday), false},
		{"0 6 * * 1", ts(6, 1, time.Monday), false},
		{"0 */12 * * *", ts(0, 0, time.Friday), true},
		{"0 */12 * * *", ts(12, 0, time.Friday), true},
		{"0 */12 * * *", ts(13, 0, time.Friday), false},
		{"0 8 * * *", ts(8, 0, time.Sunday), true},
		{"30 9-17 * * *", ts(12, 30, time.Wednesday), true},
		{"30 9-17 * * *", ts(18, 30, time.Wednesday), false},
		{"bad expr", ts(0, 0, time.Monday), false},
	}

	for _, c := range cases {
		if got := matchCron(c.expr, c.at); got != c.want {
			t.Errorf("matchCron(%q, %v) = %v, want %v", c.expr, c.at, got, c.want)
		}
	}
}

func TestCronFiresOncePerMinute(t *testing.T) {
	e := &entry{cronExpr: "* * * * *"}
	now := time.Date(2026, 2, 2, 10, 30, 0, 0, time.UTC)

	if !isDue(e, now) {
		t.Fatal("expected entry to be due")
	}
	e.lastRun = now

	// Same minute, later second: must not fire again.
	if isDue(e, now.Add(30*time.Second)) {
		t.Error("expected entry not to fire twice in one minute")
	}

	// Next minute: due again.
	if !isDue(e, now.Add(time.Minute)) {
		t.Error("expected entry to fire in the next minute")
	}
}

func TestIntervalEntries(t *testing.T) {
	e := &entry{interval: 5 * time.Minute}
	now := time.Now()

	if !isDue(e, now) {
		t.Fatal("expected first run to be due immediately")
	}
	e.lastRun = now

	if isDue(e, now.Add(time.Minute)) {
		t.Error("expected entry not to be due after 1 minute")
	}
	if !isDue(e, now.Add(5*time.Minute)) {
		t.Error("expected entry to be due after the full interval")
	}
}

func TestRegistryAndList(t *testing.T) {
	Reset()
	defer Reset()

	Every(5).Minutes().Name("heartbeat").Run(func() {})
	Cron("0 6 * * 1").Name("weekly-report").Run(func() {})

	list := List()
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %v", list)
	}
}
