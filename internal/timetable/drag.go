package timetable

import (
	"slices"

	"campustimetable/internal/domain"
)

// ApplyDrag turns a drag release into a move. A gesture dropped outside any day, or dropped
// back onto its own slot, changes nothing and reports applied=false. The self-drop check runs
// before any range check, so a drop of a slot that does not exist onto itself is also reported
// as applied=false with a nil error; Store.Move returns ErrIndexOutOfRange for the same input.
func ApplyDrag(s *Store, g domain.DragGesture) (t domain.Timetable, applied bool, err error) {
	if g.Destination == nil {
		return s.Snapshot(), false, nil
	}
	dst := *g.Destination
	if dst == g.Source {
		return s.Snapshot(), false, nil
	}
	t, err = s.Move(g.Source.Day, g.Source.Index, dst.Day, dst.Index)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

// Reorder returns a copy of entries with the element at from removed and then inserted at to.
// to is an index into the list after the removal, so Reorder([A B C], 0, 2) is [B C A].
// Both indices must be in range; Reorder panics otherwise.
func Reorder[T any](entries []T, from, to int) []T {
	out := slices.Clone(entries)
	e := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, e)
}

func removeAt(entries []domain.ClassEntry, i int) []domain.ClassEntry {
	return slices.Delete(entries, i, i+1)
}

func insertAt(entries []domain.ClassEntry, i int, e domain.ClassEntry) []domain.ClassEntry {
	return slices.Insert(entries, i, e)
}
