// internal/domain/plan.go
package domain

import "fmt"

// DayOfWeek names a weekday slot inside a plan week.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// DaysPerWeek is the number of day slots in every plan week.
const DaysPerWeek = 7

// Weekdays lists the slots in schedule order; a day index is a position in this slice.
var Weekdays = [DaysPerWeek]DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d DayOfWeek) String() string {
	return string(d)
}

func (d DayOfWeek) IsValid() bool {
	return d.Index() >= 0
}

// Index returns the 0-based position of the day (Monday = 0), or -1 if unknown.
func (d DayOfWeek) Index() int {
	for i, wd := range Weekdays {
		if wd == d {
			return i
		}
	}
	return -1
}

// DayOfWeekFromIndex maps a 0-6 day index back to its weekday.
func DayOfWeekFromIndex(i int) (DayOfWeek, error) {
	if i < 0 || i >= DaysPerWeek {
		return "", fmt.Errorf("day index out of range: %d", i)
	}
	return Weekdays[i], nil
}

// PlanDay is a single scheduled slot of a plan week.
type PlanDay struct {
	DayOfWeek         DayOfWeek `bson:"dayOfWeek" json:"dayOfWeek"`
	WorkoutTemplateID string    `bson:"workoutTemplateId" json:"workoutTemplateId"`
}

// PlanWeek groups the scheduled days of one week.
type PlanWeek struct {
	WeekNumber int       `bson:"weekNumber" json:"weekNumber"`
	Days       []PlanDay `bson:"days" json:"days"`
}

// PlanTemplate is an immutable catalog plan: a multi-week schedule of workout templates.
type PlanTemplate struct {
	ID            string     `bson:"_id" json:"id"`
	Name          string     `bson:"name,omitempty" json:"name,omitempty"`
	Sport         string     `bson:"sport,omitempty" json:"sport,omitempty"`
	Level         string     `bson:"level,omitempty" json:"level,omitempty"`
	Description   string     `bson:"description,omitempty" json:"description,omitempty"`
	DurationWeeks int        `bson:"durationWeeks" json:"durationWeeks"`
	Weeks         []PlanWeek `bson:"weeks" json:"weeks"`
}

// Slot returns the scheduled day for (week, day), if the plan has one.
func (p *PlanTemplate) Slot(week int, day DayOfWeek) (PlanDay, bool) {
	for _, w := range p.Weeks {
		if w.WeekNumber != week {
			continue
		}
		for _, d := range w.Days {
			if d.DayOfWeek == day {
				return d, true
			}
		}
	}
	return PlanDay{}, false
}
