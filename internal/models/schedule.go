package models

import (
	json "github.com/goccy/go-json"
)

// Schedule is an immutable, weekday-ordered list of DayEntry values.
// Mutators return a new Schedule; the receiver is never modified.
type Schedule struct {
	days []DayEntry
}

// NewSchedule builds a Schedule from days in any order. Repeated weekdays are
// merged by appending their streams.
func NewSchedule(days ...DayEntry) Schedule {
	normalized, _ := normalize(days)
	return Schedule{days: normalized}
}

// DecodeSchedule parses the stored JSON array form. The bool reports whether
// the stored data had to be normalized to satisfy the ordering invariants.
func DecodeSchedule(data []byte) (Schedule, bool, error) {
	var days []DayEntry
	if err := json.Unmarshal(data, &days); err != nil {
		return Schedule{}, false, err
	}
	normalized, changed := normalize(days)
	return Schedule{days: normalized}, changed, nil
}

func (s Schedule) DayEntry(w Weekday) (DayEntry, bool) {
	i := s.indexOf(w)
	if i < 0 {
		return DayEntry{}, false
	}
	return s.days[i].clone(), true
}

// AllDays returns a copy of every DayEntry in canonical order.
func (s Schedule) AllDays() []DayEntry {
	return s.cloneDays()
}

func (s Schedule) TotalStreamCount() int {
	n := 0
	for _, d := range s.days {
		n += len(d.Streams)
	}
	return n
}

func (s Schedule) Len() int {
	return len(s.days)
}

func (s Schedule) IsEmpty() bool {
	return len(s.days) == 0
}

func (s Schedule) MarshalJSON() ([]byte, error) {
	if s.days == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.days)
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	decoded, _, err := DecodeSchedule(data)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

func (s Schedule) indexOf(w Weekday) int {
	for i, d := range s.days {
		if d.Weekday == w {
			return i
		}
	}
	return -1
}

func (s Schedule) cloneDays() []DayEntry {
	out := make([]DayEntry, len(s.days))
	for i, d := range s.days {
		out[i] = d.clone()
	}
	return out
}

// normalize sorts and merges days, drops streams without a title and days
// left without streams. The bool reports whether anything was fixed.
func normalize(days []DayEntry) ([]DayEntry, bool) {
	var buckets [7]*DayEntry
	changed := false
	last := -1

	for _, d := range days {
		if !d.Weekday.Valid() {
			changed = true
			continue
		}
		pos := d.Weekday.Position()
		if pos <= last {
			changed = true
		} else {
			last = pos
		}
		if d.ShortCode != d.Weekday.ShortCode() {
			changed = true
		}

		streams := make([]StreamEntry, 0, len(d.Streams))
		for _, e := range d.Streams {
			if e.Validate() != nil {
				changed = true
				continue
			}
			n, fixed := e.normalized()
			if fixed {
				changed = true
			}
			streams = append(streams, n)
		}

		if b := buckets[pos]; b != nil {
			b.Streams = append(b.Streams, streams...)
			continue
		}
		buckets[pos] = &DayEntry{
			Weekday:   d.Weekday,
			ShortCode: d.Weekday.ShortCode(),
			Streams:   streams,
		}
	}

	out := make([]DayEntry, 0, len(days))
	for _, b := range buckets {
		if b == nil {
			continue
		}
		if len(b.Streams) == 0 {
			changed = true
			continue
		}
		out = append(out, *b)
	}
	return out, changed
}
