package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PlanDate is a civil calendar date (no time-of-day, no zone). Intake and
// plan documents exchange dates as "2006-01-02" strings.
type PlanDate struct {
	time.Time
}

// ParsePlanDate parses an ISO calendar date.
func ParsePlanDate(s string) (PlanDate, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return PlanDate{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return PlanDate{t}, nil
}

// DateOf truncates a time to its calendar date in UTC.
func DateOf(t time.Time) PlanDate {
	return PlanDate{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the date n days later.
func (d PlanDate) AddDays(n int) PlanDate {
	return PlanDate{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the whole number of days from d until other.
func (d PlanDate) DaysUntil(other PlanDate) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

func (d PlanDate) String() string {
	return d.Format("2006-01-02")
}

// MarshalJSON serializes the date as "2006-01-02".
func (d PlanDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses a "2006-01-02" date string.
func (d *PlanDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePlanDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
