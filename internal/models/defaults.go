package models

// DefaultSchedule is the built-in dataset used when the settings store has
// nothing to offer. One entry per weekday, canonical order.
func DefaultSchedule() Schedule {
	return Schedule{days: []DayEntry{
		NewDayEntry(Monday, StreamEntry{
			StartTime:   Text("7:00 PM EST"),
			Duration:    Text("4 hours"),
			Title:       "RP Night",
			Category:    "GTA V Roleplay",
			Platforms:   NewPlatformSet("Twitch", "Kick"),
			Description: "Weekly roleplay session on the community server.",
			Featured:    true,
		}),
		NewDayEntry(Tuesday, StreamEntry{
			StartTime: Text("6:00 PM EST"),
			Duration:  Text("3 hours"),
			Title:     "Chill Variety",
			Category:  "Variety",
			Platforms: NewPlatformSet("Twitch", "YouTube"),
		}),
		NewDayEntry(Wednesday, StreamEntry{
			StartTime:   Text("7:00 PM EST"),
			Duration:    Text("3 hours"),
			Title:       "Variety Night",
			Category:    "Variety",
			Platforms:   NewPlatformSet("YouTube"),
			Description: "Chat picks the games.",
		}),
		NewDayEntry(Thursday, StreamEntry{
			StartTime: Text("8:00 PM EST"),
			Duration:  Text("3 hours"),
			Title:     "Community Game Night",
			Category:  "Community Games",
			Platforms: NewPlatformSet("Twitch"),
		}),
		NewDayEntry(Friday, StreamEntry{
			StartTime: Text("9:00 PM EST"),
			Duration:  Text("3 hours"),
			Title:     "Horror Fridays",
			Category:  "Horror",
			Platforms: NewPlatformSet("Twitch", "Kick"),
			Featured:  true,
		}),
		NewDayEntry(Saturday, StreamEntry{
			StartTime: Text("2:00 PM EST"),
			Duration:  Text("6 hours"),
			Title:     "Weekend Marathon",
			Category:  DefaultCategory,
			Platforms: NewPlatformSet("Twitch", "YouTube", "Kick"),
		}),
		NewDayEntry(Sunday, Placeholder()),
	}}
}
