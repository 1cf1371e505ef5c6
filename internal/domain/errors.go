package domain

import "errors"

// Sentinel errors shared across layers. Wrap with fmt.Errorf("...: %w", err) and test with errors.Is.
var (
	ErrInvalidEntry    = errors.New("invalid class entry")
	ErrInvalidDay      = errors.New("invalid day")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyTimetable  = errors.New("timetable is empty")
)
