package models

import (
	"fmt"
	"strings"
)

// EmptyDayPolicy decides what happens to a day whose last stream is removed.
type EmptyDayPolicy string

const (
	// KeepPlaceholder leaves the day in place holding a single Placeholder entry.
	KeepPlaceholder EmptyDayPolicy = "placeholder"
	// RemoveDay drops the DayEntry from the schedule.
	RemoveDay EmptyDayPolicy = "remove"
)

func ParseEmptyDayPolicy(s string) (EmptyDayPolicy, error) {
	switch EmptyDayPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case KeepPlaceholder:
		return KeepPlaceholder, nil
	case RemoveDay:
		return RemoveDay, nil
	}
	return "", fmt.Errorf("%w: unknown empty day policy %q", ErrValidation, s)
}

// Policy holds the empty-day behavior for deletes and for cross-day moves.
type Policy struct {
	OnDelete EmptyDayPolicy
	OnMove   EmptyDayPolicy
}

// DefaultPolicy keeps a placeholder after a delete and drops the day after a move.
var DefaultPolicy = Policy{OnDelete: KeepPlaceholder, OnMove: RemoveDay}

// Mutator applies schedule operations under a Policy. Every method is pure:
// it returns a new Schedule plus whether anything changed, and leaves its
// input untouched, also on error.
type Mutator struct {
	Policy Policy
}

func NewMutator(policy Policy) Mutator {
	if policy.OnDelete == "" {
		policy.OnDelete = DefaultPolicy.OnDelete
	}
	if policy.OnMove == "" {
		policy.OnMove = DefaultPolicy.OnMove
	}
	return Mutator{Policy: policy}
}

// AddStream appends entry to w's day, creating the day at its sorted position
// when needed. A placeholder already in the day stays where it is.
func (m Mutator) AddStream(s Schedule, w Weekday, entry StreamEntry) (Schedule, bool, error) {
	if !w.Valid() {
		return s, false, fmt.Errorf("%w: invalid weekday %d", ErrValidation, int(w))
	}
	if err := entry.Validate(); err != nil {
		return s, false, err
	}
	entry = entry.withDefaults()

	days := s.cloneDays()
	i := s.indexOf(w)
	if i < 0 {
		i = InsertionIndex(s, w)
		days = append(days, DayEntry{})
		copy(days[i+1:], days[i:])
		days[i] = NewDayEntry(w)
	}

	days[i].Streams = append(days[i].Streams, entry)
	return Schedule{days: days}, true, nil
}

// EditStream replaces the stream at index in orig's day. When newW differs
// from orig the stream is moved: removed from orig (the emptied day follows
// Policy.OnMove) and appended to newW.
func (m Mutator) EditStream(s Schedule, orig Weekday, index int, entry StreamEntry, newW Weekday) (Schedule, bool, error) {
	if err := entry.Validate(); err != nil {
		return s, false, err
	}
	if !newW.Valid() {
		return s, false, fmt.Errorf("%w: invalid weekday %d", ErrValidation, int(newW))
	}
	dayIdx, err := s.locate(orig, index)
	if err != nil {
		return s, false, err
	}

	if newW == orig {
		next := entry.withDefaults()
		if next.equal(s.days[dayIdx].Streams[index]) {
			return s, false, nil
		}
		days := s.cloneDays()
		days[dayIdx].Streams[index] = next
		return Schedule{days: days}, true, nil
	}

	moved := s.removeStream(dayIdx, index, m.Policy.OnMove)
	return m.AddStream(moved, newW, entry)
}

// DeleteStream removes the stream at index. An emptied day follows
// Policy.OnDelete. Deleting the placeholder of a day that holds nothing else
// under KeepPlaceholder leaves the schedule as it is and reports no change.
func (m Mutator) DeleteStream(s Schedule, w Weekday, index int) (Schedule, bool, error) {
	dayIdx, err := s.locate(w, index)
	if err != nil {
		return s, false, err
	}
	streams := s.days[dayIdx].Streams
	if m.Policy.OnDelete == KeepPlaceholder && len(streams) == 1 && streams[0].IsPlaceholder() {
		return s, false, nil
	}
	return s.removeStream(dayIdx, index, m.Policy.OnDelete), true, nil
}

// ResetToDefault cannot fail.
func (m Mutator) ResetToDefault() Schedule {
	return DefaultSchedule()
}

func AddStream(s Schedule, w Weekday, entry StreamEntry) (Schedule, bool, error) {
	return NewMutator(DefaultPolicy).AddStream(s, w, entry)
}

func EditStream(s Schedule, orig Weekday, index int, entry StreamEntry, newW Weekday) (Schedule, bool, error) {
	return NewMutator(DefaultPolicy).EditStream(s, orig, index, entry, newW)
}

func DeleteStream(s Schedule, w Weekday, index int) (Schedule, bool, error) {
	return NewMutator(DefaultPolicy).DeleteStream(s, w, index)
}

func ResetToDefault() Schedule {
	return DefaultSchedule()
}

// WouldEmptyDay reports whether deleting index from w's day removes the last
// real stream of that day.
func (s Schedule) WouldEmptyDay(w Weekday, index int) bool {
	dayIdx, err := s.locate(w, index)
	if err != nil {
		return false
	}
	for i, e := range s.days[dayIdx].Streams {
		if i != index && !e.IsPlaceholder() {
			return false
		}
	}
	return !s.days[dayIdx].Streams[index].IsPlaceholder()
}

func (s Schedule) locate(w Weekday, index int) (int, error) {
	dayIdx := s.indexOf(w)
	if dayIdx < 0 {
		return -1, fmt.Errorf("%w: no entries for %s", ErrNotFound, w)
	}
	if index < 0 || index >= len(s.days[dayIdx].Streams) {
		return -1, fmt.Errorf("%w: %s has no stream at index %d", ErrNotFound, w, index)
	}
	return dayIdx, nil
}

func (s Schedule) removeStream(dayIdx, index int, onEmpty EmptyDayPolicy) Schedule {
	days := s.cloneDays()
	day := &days[dayIdx]
	day.Streams = append(day.Streams[:index], day.Streams[index+1:]...)
	if len(day.Streams) > 0 {
		return Schedule{days: days}
	}
	if onEmpty == RemoveDay {
		days = append(days[:dayIdx], days[dayIdx+1:]...)
	} else {
		day.Streams = []StreamEntry{Placeholder()}
	}
	return Schedule{days: days}
}
