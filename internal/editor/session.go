package editor

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gookit/validate"
	"streamsched/internal/models"
)

// ErrNoSession is returned when a draft is updated or committed while idle.
var ErrNoSession = errors.New("no edit in progress")

// Mode is the editor state: Idle, AddingTo or Editing.
type Mode interface {
	name() string
}

type Idle struct{}

type AddingTo struct {
	Weekday models.Weekday
}

type Editing struct {
	Weekday models.Weekday
	Index   int
}

func (Idle) name() string     { return "idle" }
func (AddingTo) name() string { return "adding" }
func (Editing) name() string  { return "editing" }

// Draft holds the form fields of one add or edit. Weekday is the target day;
// changing it while editing moves the stream on commit.
type Draft struct {
	Weekday     models.Weekday `json:"weekday"`
	Title       string         `json:"title" validate:"required" label:"title"`
	StartTime   string         `json:"startTime"`
	Duration    string         `json:"duration"`
	Category    string         `json:"category"`
	Platforms   []string       `json:"platforms"`
	Description string         `json:"description"`
	Featured    bool           `json:"featured"`
}

// Validate runs the commit-time checks. Only the title is required.
func (d Draft) Validate() error {
	d.Title = strings.TrimSpace(d.Title)
	v := validate.Struct(&d)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", models.ErrValidation, v.Errors.One())
	}
	if !d.Weekday.Valid() {
		return fmt.Errorf("%w: invalid weekday %d", models.ErrValidation, int(d.Weekday))
	}
	return nil
}

// Entry converts the draft, substituting defaults for blank optional fields.
func (d Draft) Entry() models.StreamEntry {
	category := strings.TrimSpace(d.Category)
	if category == "" {
		category = models.DefaultCategory
	}
	return models.StreamEntry{
		StartTime:   models.Text(d.StartTime),
		Duration:    models.Text(d.Duration),
		Title:       strings.TrimSpace(d.Title),
		Category:    category,
		Platforms:   models.NewPlatformSet(d.Platforms...),
		Description: d.Description,
		Featured:    d.Featured,
	}
}

func (d Draft) clone() Draft {
	if d.Platforms != nil {
		d.Platforms = append([]string(nil), d.Platforms...)
	}
	return d
}

func DraftFromEntry(w models.Weekday, e models.StreamEntry) Draft {
	d := Draft{
		Weekday:     w,
		Title:       e.Title,
		Category:    e.Category,
		Platforms:   append([]string{}, e.Platforms...),
		Description: e.Description,
		Featured:    e.Featured,
	}
	if e.StartTime != nil {
		d.StartTime = *e.StartTime
	}
	if e.Duration != nil {
		d.Duration = *e.Duration
	}
	return d
}

// State is the serializable view of a Session.
type State struct {
	Mode    string          `json:"mode"`
	Weekday *models.Weekday `json:"weekday,omitempty"`
	Index   *int            `json:"index,omitempty"`
	Draft   *Draft          `json:"draft,omitempty"`
}

// Session is the transient state of a single add or edit. It is never persisted.
type Session struct {
	mu    sync.Mutex
	mode  Mode
	draft Draft
}

func NewSession() *Session {
	return &Session{mode: Idle{}}
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{Mode: s.mode.name()}
	switch m := s.mode.(type) {
	case AddingTo:
		st.Weekday = &m.Weekday
	case Editing:
		st.Weekday = &m.Weekday
		st.Index = &m.Index
	}
	if _, idle := s.mode.(Idle); !idle {
		d := s.draft.clone()
		st.Draft = &d
	}
	return st
}

// BeginAdd starts a new entry for w, discarding any unfinished draft.
func (s *Session) BeginAdd(w models.Weekday) error {
	if !w.Valid() {
		return fmt.Errorf("%w: invalid weekday %d", models.ErrValidation, int(w))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = AddingTo{Weekday: w}
	s.draft = Draft{Weekday: w}
	return nil
}

// BeginEdit loads the stream at index of w's day into the draft.
func (s *Session) BeginEdit(schedule models.Schedule, w models.Weekday, index int) error {
	day, ok := schedule.DayEntry(w)
	if !ok {
		return fmt.Errorf("%w: no entries for %s", models.ErrNotFound, w)
	}
	if index < 0 || index >= len(day.Streams) {
		return fmt.Errorf("%w: %s has no stream at index %d", models.ErrNotFound, w, index)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = Editing{Weekday: w, Index: index}
	s.draft = DraftFromEntry(w, day.Streams[index])
	return nil
}

// Update replaces the draft fields. No validation happens here.
func (s *Session) Update(d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, idle := s.mode.(Idle); idle {
		return ErrNoSession
	}
	s.draft = d.clone()
	return nil
}

func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = Idle{}
	s.draft = Draft{}
}

// Commit validates the draft and folds it into schedule. On failure the draft
// and mode are kept for correction; on success the session returns to Idle.
func (s *Session) Commit(m models.Mutator, schedule models.Schedule) (models.Schedule, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, idle := s.mode.(Idle); idle {
		return schedule, false, ErrNoSession
	}
	if err := s.draft.Validate(); err != nil {
		return schedule, false, err
	}

	var (
		next    models.Schedule
		changed bool
		err     error
	)
	switch mode := s.mode.(type) {
	case AddingTo:
		next, changed, err = m.AddStream(schedule, s.draft.Weekday, s.draft.Entry())
	case Editing:
		next, changed, err = m.EditStream(schedule, mode.Weekday, mode.Index, s.draft.Entry(), s.draft.Weekday)
	default:
		return schedule, false, ErrNoSession
	}
	if err != nil {
		return schedule, false, err
	}

	s.mode = Idle{}
	s.draft = Draft{}
	return next, changed, nil
}
