package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Weekday is one of the seven weekday symbols, Monday through Sunday.
// The zero value is Monday so a week slice indexes naturally from the
// start of a training week.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysPerWeek is the size of the weekday domain. All scheduling iteration
// is bounded by it.
const DaysPerWeek = 7

var weekdayNames = [DaysPerWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// AllWeekdays returns the seven weekdays in natural Monday-first order.
func AllWeekdays() [DaysPerWeek]Weekday {
	return [DaysPerWeek]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Next returns the weekday after d, wrapping Sunday back to Monday.
func (d Weekday) Next() Weekday {
	return (d + 1) % DaysPerWeek
}

// Prev returns the weekday before d, wrapping Monday back to Sunday.
func (d Weekday) Prev() Weekday {
	return (d + DaysPerWeek - 1) % DaysPerWeek
}

// IsWeekend reports whether d is Saturday or Sunday.
func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// WeekendAlternate returns the other weekend day for Saturday/Sunday.
// For a weekday long-run day the alternate is Saturday, the first
// weekend slot.
func (d Weekday) WeekendAlternate() Weekday {
	if d == Saturday {
		return Sunday
	}
	return Saturday
}

func (d Weekday) String() string {
	if d < 0 || d >= DaysPerWeek {
		return fmt.Sprintf("weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday parses a lowercase or mixed-case weekday name.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// MarshalJSON serializes the weekday as its lowercase name, matching the
// plan document schema.
func (d Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses a weekday name.
func (d *Weekday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaySet is a set of weekdays, used for per-activity availability.
// The set is week-invariant: availability does not change across weeks.
type DaySet uint8

// NewDaySet builds a set from the given days.
func NewDaySet(days ...Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// Add returns the set with d included.
func (s DaySet) Add(d Weekday) DaySet {
	return s | 1<<uint(d)
}

// Has reports whether d is in the set.
func (s DaySet) Has(d Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Len returns the number of days in the set.
func (s DaySet) Len() int {
	n := 0
	for _, d := range AllWeekdays() {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Days returns the members in natural Monday-first order.
func (s DaySet) Days() []Weekday {
	var out []Weekday
	for _, d := range AllWeekdays() {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// MarshalJSON serializes the set as an ordered list of day names.
func (s DaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Days())
}

// UnmarshalJSON parses a list of day names.
func (s *DaySet) UnmarshalJSON(data []byte) error {
	var days []Weekday
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	*s = NewDaySet(days...)
	return nil
}
