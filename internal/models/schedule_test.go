package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedule_SortsAndMerges(t *testing.T) {
	s := NewSchedule(
		NewDayEntry(Sunday, StreamEntry{Title: "late"}),
		NewDayEntry(Monday, StreamEntry{Title: "first"}),
		NewDayEntry(Sunday, StreamEntry{Title: "later"}),
	)

	days := s.AllDays()
	require.Len(t, days, 2)
	assert.Equal(t, Monday, days[0].Weekday)
	assert.Equal(t, Sunday, days[1].Weekday)
	require.Len(t, days[1].Streams, 2)
	assert.Equal(t, "late", days[1].Streams[0].Title)
	assert.Equal(t, "later", days[1].Streams[1].Title)
}

func TestSchedule_DayEntry(t *testing.T) {
	s := DefaultSchedule()

	d, ok := s.DayEntry(Friday)
	require.True(t, ok)
	assert.Equal(t, "FRI", d.ShortCode)
	assert.Equal(t, "Horror Fridays", d.Streams[0].Title)

	_, ok = Schedule{}.DayEntry(Friday)
	assert.False(t, ok)
}

func TestSchedule_AllDaysIsACopy(t *testing.T) {
	s := DefaultSchedule()
	days := s.AllDays()
	days[0].Streams[0].Title = "changed"
	*days[0].Streams[0].StartTime = "never"
	days[0].Streams[0].Platforms[0] = "Nowhere"

	d, _ := s.DayEntry(Monday)
	assert.Equal(t, "RP Night", d.Streams[0].Title)
	assert.Equal(t, "7:00 PM EST", *d.Streams[0].StartTime)
	assert.Equal(t, "Twitch", d.Streams[0].Platforms[0])
}

func TestSchedule_TotalStreamCount(t *testing.T) {
	assert.Equal(t, 7, DefaultSchedule().TotalStreamCount())
	assert.Equal(t, 0, Schedule{}.TotalStreamCount())
}

func TestDefaultSchedule_OnePerWeekdayInOrder(t *testing.T) {
	days := DefaultSchedule().AllDays()
	require.Len(t, days, 7)
	for i, d := range days {
		assert.Equal(t, Weekdays()[i], d.Weekday)
		assert.Equal(t, d.Weekday.ShortCode(), d.ShortCode)
		assert.NotEmpty(t, d.Streams)
	}
}

func TestSchedule_JSONRoundtrip(t *testing.T) {
	s := DefaultSchedule()
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded Schedule
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(s.AllDays(), decoded.AllDays()); diff != "" {
		t.Errorf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestSchedule_JSONShape(t *testing.T) {
	s := NewSchedule(NewDayEntry(Sunday, Placeholder()))
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"weekday":"Sunday","shortCode":"SUN","streams":[
		{"startTime":null,"duration":null,"title":"No Stream Scheduled","category":"TBD","platforms":[],"description":"","featured":false}
	]}]`, string(data))

	empty, err := json.Marshal(Schedule{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestDecodeSchedule_NormalizesStoredData(t *testing.T) {
	raw := `[
		{"weekday":"Friday","shortCode":"XXX","streams":[{"title":"B","category":"","platforms":["Twitch","Twitch"]}]},
		{"weekday":"MON","shortCode":"MON","streams":[{"title":"A","category":"Chess","platforms":[]}]},
		{"weekday":"Friday","shortCode":"FRI","streams":[{"title":"C","category":"Art","platforms":[]}]}
	]`

	s, changed, err := DecodeSchedule([]byte(raw))
	require.NoError(t, err)
	assert.True(t, changed)

	days := s.AllDays()
	require.Len(t, days, 2)
	assert.Equal(t, Monday, days[0].Weekday)
	assert.Equal(t, Friday, days[1].Weekday)
	assert.Equal(t, "FRI", days[1].ShortCode)
	require.Len(t, days[1].Streams, 2)
	assert.Equal(t, DefaultCategory, days[1].Streams[0].Category)
	assert.Equal(t, PlatformSet{"Twitch"}, days[1].Streams[0].Platforms)
	assert.Equal(t, "C", days[1].Streams[1].Title)
}

func TestDecodeSchedule_CleanDataUnchanged(t *testing.T) {
	data, err := json.Marshal(DefaultSchedule())
	require.NoError(t, err)

	_, changed, err := DecodeSchedule(data)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestDecodeSchedule_Invalid(t *testing.T) {
	_, _, err := DecodeSchedule([]byte(`{"not":"an array"}`))
	assert.Error(t, err)

	_, _, err = DecodeSchedule([]byte(`[{"weekday":"Someday","streams":[]}]`))
	assert.Error(t, err)
}

func TestDecodeSchedule_DayWithoutWeekday(t *testing.T) {
	_, _, err := DecodeSchedule([]byte(`[{"streams":[{"title":"orphan"}]}]`))
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = DecodeSchedule([]byte(`[{"weekday":null,"streams":[{"title":"orphan"}]}]`))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDecodeSchedule_DropsUntitledStreams(t *testing.T) {
	raw := `[
		{"weekday":"Monday","shortCode":"MON","streams":[{"title":""},{"title":"kept","category":"Art","platforms":[]}]},
		{"weekday":"Tuesday","shortCode":"TUE","streams":[{"title":"   "}]}
	]`

	s, changed, err := DecodeSchedule([]byte(raw))
	require.NoError(t, err)
	assert.True(t, changed)

	days := s.AllDays()
	require.Len(t, days, 1)
	assert.Equal(t, Monday, days[0].Weekday)
	require.Len(t, days[0].Streams, 1)
	assert.Equal(t, "kept", days[0].Streams[0].Title)
}

func TestPlatformSet_OrderedAndUnique(t *testing.T) {
	p := NewPlatformSet("Twitch", " Kick ", "", "Twitch", "YouTube")
	assert.Equal(t, PlatformSet{"Twitch", "Kick", "YouTube"}, p)

	added := p.Add("Kick")
	assert.Equal(t, p, added)
	added = p.Add("TikTok")
	assert.Equal(t, PlatformSet{"Twitch", "Kick", "YouTube", "TikTok"}, added)
	assert.Len(t, p, 3)
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder()
	assert.True(t, p.IsPlaceholder())
	assert.Nil(t, p.StartTime)
	assert.Nil(t, p.Duration)
	assert.Equal(t, DefaultCategory, p.Category)
	assert.False(t, p.Featured)

	assert.False(t, StreamEntry{Title: PlaceholderTitle, StartTime: Text("8 PM")}.IsPlaceholder())
}
