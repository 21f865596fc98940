package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// DayEntry holds one weekday's streams in insertion order.
type DayEntry struct {
	Weekday   Weekday       `json:"weekday"`
	ShortCode string        `json:"shortCode"`
	Streams   []StreamEntry `json:"streams"`
}

func NewDayEntry(w Weekday, streams ...StreamEntry) DayEntry {
	d := DayEntry{
		Weekday:   w,
		ShortCode: w.ShortCode(),
		Streams:   make([]StreamEntry, 0, len(streams)),
	}
	for _, s := range streams {
		d.Streams = append(d.Streams, s.clone())
	}
	return d
}

// HasScheduledStreams reports whether the day holds anything besides the placeholder.
func (d DayEntry) HasScheduledStreams() bool {
	for _, s := range d.Streams {
		if !s.IsPlaceholder() {
			return true
		}
	}
	return false
}

func (d DayEntry) clone() DayEntry {
	return NewDayEntry(d.Weekday, d.Streams...)
}

// UnmarshalJSON rejects a stored day without a weekday instead of letting it
// default to Monday.
func (d *DayEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Weekday   *Weekday      `json:"weekday"`
		ShortCode string        `json:"shortCode"`
		Streams   []StreamEntry `json:"streams"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Weekday == nil {
		return fmt.Errorf("%w: day entry without weekday", ErrValidation)
	}
	*d = DayEntry{Weekday: *raw.Weekday, ShortCode: raw.ShortCode, Streams: raw.Streams}
	return nil
}
