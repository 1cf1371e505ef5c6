package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Weekday is one of the six scheduled days.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// DaysPerWeek is the number of day buckets in a Timetable.
const DaysPerWeek = 6

// Weekdays lists the scheduled days in display order.
var Weekdays = [DaysPerWeek]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Index returns the bucket position of d (0 for Monday) and false for an unknown day.
func (d Weekday) Index() (int, bool) {
	for i, w := range Weekdays {
		if w == d {
			return i, true
		}
	}
	return -1, false
}

// Valid reports whether d is one of the scheduled days.
func (d Weekday) Valid() bool {
	_, ok := d.Index()
	return ok
}

// ParseWeekday accepts a day name in any letter case ("monday", "MONDAY").
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for _, w := range Weekdays {
		if strings.EqualFold(string(w), s) {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

// ClassType is the kind of class session.
type ClassType string

const (
	Lecture  ClassType = "Lecture"
	Lab      ClassType = "Lab"
	Tutorial ClassType = "Tutorial"
	Workshop ClassType = "Workshop"
	Seminar  ClassType = "Seminar"
)

// ClassTypes is the canonical set of accepted class types.
var ClassTypes = []ClassType{Lecture, Lab, Tutorial, Workshop, Seminar}

// Valid reports whether t is a known class type.
func (t ClassType) Valid() bool {
	for _, c := range ClassTypes {
		if c == t {
			return true
		}
	}
	return false
}

// TimeOfDay is a wall-clock time as minutes after midnight. JSON form is "HH:MM".
type TimeOfDay int

var timeOfDayRegexp = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// NewTimeOfDay returns the time hour:minute or an error when out of range.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time of day out of range: %02d:%02d", hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses "HH:MM" (24h clock, single-digit hour allowed).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := timeOfDayRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if parts == nil {
		return 0, fmt.Errorf("invalid time of day %q, want HH:MM", s)
	}
	h, _ := strconv.Atoi(parts[1])
	m, _ := strconv.Atoi(parts[2])
	return NewTimeOfDay(h, m)
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("time of day must be a \"HH:MM\" string")
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ClassEntry is one scheduled class. StartTime and EndTime are nil until set.
// ID is assigned by the store on add and survives edit and move; entries are still
// addressed by day and index.
// swagger:model ClassEntry
type ClassEntry struct {
	ID        string     `json:"id"`
	Subject   string     `json:"subject"`
	Type      ClassType  `json:"type"`
	StartTime *TimeOfDay `json:"start_time"`
	EndTime   *TimeOfDay `json:"end_time"`
	Location  string     `json:"location"`
	Teacher   string     `json:"teacher"`
	Day       Weekday    `json:"day"`
}

// Validate returns the list of problems with e; empty means valid.
func (e ClassEntry) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Subject) == "" {
		errs = append(errs, "subject is required")
	}
	if !e.Type.Valid() {
		errs = append(errs, fmt.Sprintf("type must be one of %v", ClassTypes))
	}
	if !e.Day.Valid() {
		errs = append(errs, fmt.Sprintf("day must be one of %v", Weekdays))
	}
	if e.StartTime == nil {
		errs = append(errs, "start_time is required")
	}
	if e.EndTime == nil {
		errs = append(errs, "end_time is required")
	}
	if e.StartTime != nil && e.EndTime != nil && *e.EndTime <= *e.StartTime {
		errs = append(errs, "end_time must be after start_time")
	}
	return errs
}

// Clone returns a copy of e that shares no pointers with it.
func (e ClassEntry) Clone() ClassEntry {
	if e.StartTime != nil {
		v := *e.StartTime
		e.StartTime = &v
	}
	if e.EndTime != nil {
		v := *e.EndTime
		e.EndTime = &v
	}
	return e
}

// Timetable maps every scheduled day to its ordered entries. Snapshots always carry all six days.
type Timetable map[Weekday][]ClassEntry

// Len returns the total number of entries across all days.
func (t Timetable) Len() int {
	n := 0
	for _, entries := range t {
		n += len(entries)
	}
	return n
}

// DaySchedule is one day bucket in display order, used when rendering a timetable.
type DaySchedule struct {
	Day     Weekday
	Classes []ClassEntry
}

// Ordered returns the days of t Monday first.
func (t Timetable) Ordered() []DaySchedule {
	out := make([]DaySchedule, 0, DaysPerWeek)
	for _, d := range Weekdays {
		out = append(out, DaySchedule{Day: d, Classes: t[d]})
	}
	return out
}

// SlotRef addresses an entry by day and position.
type SlotRef struct {
	Day   Weekday `json:"day"`
	Index int     `json:"index"`
}

// DragGesture is a drag-and-drop release. A nil Destination means the entry was dropped
// outside any day column.
// swagger:model DragGesture
type DragGesture struct {
	Source      SlotRef  `json:"source"`
	Destination *SlotRef `json:"destination"`
}

// TimetableService defines the business logic for editing an owner's timetable.
type TimetableService interface {
	Get(ctx context.Context, ownerID string) (Timetable, error)
	GetDay(ctx context.Context, ownerID string, day Weekday) ([]ClassEntry, error)
	AddClass(ctx context.Context, ownerID string, entry ClassEntry) (Timetable, error)
	EditClass(ctx context.Context, ownerID string, day Weekday, index int, entry ClassEntry) (Timetable, error)
	DeleteClass(ctx context.Context, ownerID string, day Weekday, index int) (Timetable, error)
	MoveClass(ctx context.Context, ownerID string, gesture DragGesture) (Timetable, bool, error)
	EmailTimetable(ctx context.Context, ownerID string) error
}
