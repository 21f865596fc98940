package models

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Weekday is a day of the week in canonical schedule order, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var weekdayCodes = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// Weekdays returns all seven weekdays in canonical order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// Position is the canonical 0..6 index used to keep a Schedule sorted.
func (w Weekday) Position() int {
	return int(w)
}

func (w Weekday) ShortCode() string {
	if !w.Valid() {
		return ""
	}
	return weekdayCodes[w]
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// ParseWeekday accepts a full name ("Monday") or a short code ("MON"), case-insensitive.
func ParseWeekday(s string) (Weekday, error) {
	v := strings.TrimSpace(s)
	for i := range weekdayNames {
		if strings.EqualFold(v, weekdayNames[i]) || strings.EqualFold(v, weekdayCodes[i]) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrValidation, s)
}

// InsertionIndex returns the index at which a new DayEntry for w has to be
// inserted into s to keep it sorted: the first entry positioned after w, or
// the end of the list.
func InsertionIndex(s Schedule, w Weekday) int {
	for i, d := range s.days {
		if d.Weekday.Position() > w.Position() {
			return i
		}
	}
	return len(s.days)
}

func (w Weekday) MarshalJSON() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: invalid weekday %d", ErrValidation, int(w))
	}
	return json.Marshal(weekdayNames[w])
}

func (w *Weekday) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		var pos int
		if errNum := json.Unmarshal(data, &pos); errNum != nil {
			return err
		}
		if !Weekday(pos).Valid() {
			return fmt.Errorf("%w: weekday position %d out of range", ErrValidation, pos)
		}
		*w = Weekday(pos)
		return nil
	}
	parsed, err := ParseWeekday(name)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
