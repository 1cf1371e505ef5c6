// Package timetable holds the in-memory weekly timetable and the drag-and-drop reorder rules.
//
// A Store is not safe for concurrent use; callers serialize access to it.
package timetable

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"campustimetable/internal/domain"
)

// Store owns the ordered class entries of each scheduled day. Every mutation is either
// fully applied or not applied at all.
type Store struct {
	days  [domain.DaysPerWeek][]domain.ClassEntry
	newID func() string
}

// NewStore returns an empty timetable.
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Add validates entry and appends it to its day. Type defaults to Lecture when empty.
func (s *Store) Add(entry domain.ClassEntry) (domain.Timetable, error) {
	entry = normalize(entry)
	if err := validate(entry); err != nil {
		return nil, err
	}
	d, _ := entry.Day.Index()
	entry.ID = s.newID()
	s.days[d] = append(s.days[d], entry)
	return s.Snapshot(), nil
}

// Edit replaces the entry at (day, index), keeping its ID. An empty entry.Day means day.
// When entry.Day names another day the entry is removed from day and appended there.
func (s *Store) Edit(day domain.Weekday, index int, entry domain.ClassEntry) (domain.Timetable, error) {
	d, err := s.slot(day, index)
	if err != nil {
		return nil, err
	}
	if entry.Day == "" {
		entry.Day = day
	}
	entry = normalize(entry)
	if err := validate(entry); err != nil {
		return nil, err
	}
	entry.ID = s.days[d][index].ID

	if entry.Day == day {
		s.days[d][index] = entry
		return s.Snapshot(), nil
	}
	dst, _ := entry.Day.Index()
	s.days[d] = removeAt(s.days[d], index)
	s.days[dst] = append(s.days[dst], entry)
	return s.Snapshot(), nil
}

// Delete removes the entry at (day, index). Later entries of that day shift down by one.
func (s *Store) Delete(day domain.Weekday, index int) (domain.Timetable, error) {
	d, err := s.slot(day, index)
	if err != nil {
		return nil, err
	}
	s.days[d] = removeAt(s.days[d], index)
	return s.Snapshot(), nil
}

// Move takes the entry at (srcDay, srcIndex) and inserts it at dstIndex of dstDay, setting its
// Day to dstDay. dstIndex is read against dstDay after the removal, so it may equal that
// shortened length (append). Identical coordinates are a no-op.
func (s *Store) Move(srcDay domain.Weekday, srcIndex int, dstDay domain.Weekday, dstIndex int) (domain.Timetable, error) {
	src, err := s.slot(srcDay, srcIndex)
	if err != nil {
		return nil, err
	}
	dst, ok := dstDay.Index()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, dstDay)
	}
	if src == dst && srcIndex == dstIndex {
		return s.Snapshot(), nil
	}

	limit := len(s.days[dst])
	if src == dst {
		limit--
	}
	if dstIndex < 0 || dstIndex > limit {
		return nil, fmt.Errorf("%w: %s has room for index 0..%d, got %d", domain.ErrIndexOutOfRange, dstDay, limit, dstIndex)
	}

	if src == dst {
		s.days[src] = Reorder(s.days[src], srcIndex, dstIndex)
		return s.Snapshot(), nil
	}
	entry := s.days[src][srcIndex]
	entry.Day = dstDay
	s.days[src] = removeAt(s.days[src], srcIndex)
	s.days[dst] = insertAt(s.days[dst], dstIndex, entry)
	return s.Snapshot(), nil
}

// Day returns a copy of the entries scheduled on day.
func (s *Store) Day(day domain.Weekday) ([]domain.ClassEntry, error) {
	d, ok := day.Index()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
	}
	return cloneEntries(s.days[d]), nil
}

// Snapshot returns a deep copy of the whole timetable with all six days present.
func (s *Store) Snapshot() domain.Timetable {
	t := make(domain.Timetable, domain.DaysPerWeek)
	for i, d := range domain.Weekdays {
		t[d] = cloneEntries(s.days[i])
	}
	return t
}

// Len returns the number of entries across all days.
func (s *Store) Len() int {
	n := 0
	for _, entries := range s.days {
		n += len(entries)
	}
	return n
}

// IsEmpty reports whether no day has any entry.
func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// slot resolves day to its bucket and checks index against the bucket's current length.
func (s *Store) slot(day domain.Weekday, index int) (int, error) {
	d, ok := day.Index()
	if !ok {
		return -1, fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
	}
	if index < 0 || index >= len(s.days[d]) {
		return -1, fmt.Errorf("%w: %s has %d entries, got index %d", domain.ErrIndexOutOfRange, day, len(s.days[d]), index)
	}
	return d, nil
}

func normalize(e domain.ClassEntry) domain.ClassEntry {
	e = e.Clone()
	e.Subject = strings.TrimSpace(e.Subject)
	if e.Type == "" {
		e.Type = domain.Lecture
	}
	return e
}

func validate(e domain.ClassEntry) error {
	if errs := e.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidEntry, strings.Join(errs, "; "))
	}
	return nil
}

func cloneEntries(entries []domain.ClassEntry) []domain.ClassEntry {
	out := make([]domain.ClassEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
