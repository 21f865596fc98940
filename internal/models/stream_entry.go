package models

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	DefaultCategory  = "TBD"
	PlaceholderTitle = "No Stream Scheduled"
)

// PlatformSet is an ordered set of platform names. Order of first insertion
// is kept for display.
type PlatformSet []string

// NewPlatformSet builds a set from names, dropping blanks and repeats.
func NewPlatformSet(names ...string) PlatformSet {
	set := make(PlatformSet, 0, len(names))
	for _, n := range names {
		set = set.Add(n)
	}
	return set
}

func (p PlatformSet) Contains(name string) bool {
	for _, v := range p {
		if v == name {
			return true
		}
	}
	return false
}

// Add returns a copy of p with name appended, unless it is blank or already present.
func (p PlatformSet) Add(name string) PlatformSet {
	name = strings.TrimSpace(name)
	out := make(PlatformSet, len(p), len(p)+1)
	copy(out, p)
	if name == "" || p.Contains(name) {
		return out
	}
	return append(out, name)
}

func (p PlatformSet) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(p))
}

func (p *PlatformSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*p = NewPlatformSet(names...)
	return nil
}

// StreamEntry is one scheduled broadcast. StartTime and Duration are display
// strings; nil means "not set".
type StreamEntry struct {
	StartTime   *string     `json:"startTime"`
	Duration    *string     `json:"duration"`
	Title       string      `json:"title"`
	Category    string      `json:"category"`
	Platforms   PlatformSet `json:"platforms"`
	Description string      `json:"description"`
	Featured    bool        `json:"featured"`
}

// Text returns a pointer to s, or nil when s is blank.
func Text(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Placeholder is the sentinel entry left in a day whose last stream was deleted.
func Placeholder() StreamEntry {
	return StreamEntry{
		Title:     PlaceholderTitle,
		Category:  DefaultCategory,
		Platforms: PlatformSet{},
	}
}

// IsPlaceholder matches the whole sentinel value, so a real stream that
// happens to share its title is not mistaken for it.
func (e StreamEntry) IsPlaceholder() bool {
	return e.equal(Placeholder())
}

func (e StreamEntry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	return nil
}

// withDefaults is the commit-time cleanup applied by the mutators.
func (e StreamEntry) withDefaults() StreamEntry {
	out := e.clone()
	out.Title = strings.TrimSpace(out.Title)
	out.Category = strings.TrimSpace(out.Category)
	if out.Category == "" {
		out.Category = DefaultCategory
	}
	out.StartTime = Text(derefText(out.StartTime))
	out.Duration = Text(derefText(out.Duration))
	out.Platforms = NewPlatformSet(out.Platforms...)
	return out
}

// normalized fixes stored entries without touching their title; the bool
// reports whether anything was changed.
func (e StreamEntry) normalized() (StreamEntry, bool) {
	out := e.clone()
	changed := false
	if strings.TrimSpace(out.Category) == "" {
		out.Category = DefaultCategory
		changed = true
	}
	platforms := NewPlatformSet(out.Platforms...)
	if len(platforms) != len(out.Platforms) {
		changed = true
	}
	out.Platforms = platforms
	return out, changed
}

func (e StreamEntry) clone() StreamEntry {
	out := e
	if e.StartTime != nil {
		v := *e.StartTime
		out.StartTime = &v
	}
	if e.Duration != nil {
		v := *e.Duration
		out.Duration = &v
	}
	out.Platforms = make(PlatformSet, len(e.Platforms))
	copy(out.Platforms, e.Platforms)
	return out
}

func (e StreamEntry) equal(o StreamEntry) bool {
	if e.Title != o.Title || e.Category != o.Category || e.Description != o.Description || e.Featured != o.Featured {
		return false
	}
	if derefText(e.StartTime) != derefText(o.StartTime) || derefText(e.Duration) != derefText(o.Duration) {
		return false
	}
	if len(e.Platforms) != len(o.Platforms) {
		return false
	}
	for i := range e.Platforms {
		if e.Platforms[i] != o.Platforms[i] {
			return false
		}
	}
	return true
}

func derefText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
