package database

// defaultWeek is Misuki's starter schedule, used only when the table is
// empty. The editor replaces days wholesale from here on.
var defaultWeek = map[int][]ScheduleSlot{
	// Sunday
	0: {
		{Time: "00:00", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
		{Time: "08:30", Activity: "getting ready", Emoji: "🪞", Type: SlotTypePersonal},
		{Time: "10:00", Activity: "at church", Emoji: "⛪", Type: SlotTypeChurch},
		{Time: "12:30", Activity: "lunch with family", Emoji: "🍱", Type: SlotTypeBreak},
		{Time: "14:00", Activity: "relaxing at home", Emoji: "🛋️", Type: SlotTypeFree},
		{Time: "19:00", Activity: "prepping for the week", Emoji: "📓", Type: SlotTypeStudying},
		{Time: "23:00", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
	},
	// Monday
	1: weekdayTemplate(),
	// Tuesday
	2: weekdayTemplate(),
	// Wednesday
	3: {
		{Time: "00:00", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
		{Time: "07:00", Activity: "morning routine", Emoji: "☀️", Type: SlotTypePersonal},
		{Time: "08:30", Activity: "commuting to campus", Emoji: "🚃", Type: SlotTypeCommute},
		{Time: "09:30", Activity: "lab session", Emoji: "🔬", Type: SlotTypeUniversity},
		{Time: "12:30", Activity: "lunch break", Emoji: "🍙", Type: SlotTypeBreak},
		{Time: "13:30", Activity: "afternoon lecture", Emoji: "📚", Type: SlotTypeClass},
		{Time: "16:00", Activity: "library study", Emoji: "✏️", Type: SlotTypeStudying},
		{Time: "18:00", Activity: "commuting home", Emoji: "🚃", Type: SlotTypeCommute},
		{Time: "19:00", Activity: "free time", Emoji: "🎮", Type: SlotTypeFree},
		{Time: "23:00", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
	},
	// Thursday
	4: weekdayTemplate(),
	// Friday
	5: {
		{Time: "00:00", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
		{Time: "07:00", Activity: "morning routine", Emoji: "☀️", Type: SlotTypePersonal},
		{Time: "08:30", Activity: "commuting to campus", Emoji: "🚃", Type: SlotTypeCommute},
		{Time: "09:30", Activity: "morning lecture", Emoji: "📚", Type: SlotTypeClass},
		{Time: "12:30", Activity: "lunch break", Emoji: "🍙", Type: SlotTypeBreak},
		{Time: "13:30", Activity: "afternoon lecture", Emoji: "📚", Type: SlotTypeClass},
		{Time: "16:00", Activity: "out with friends", Emoji: "🎉", Type: SlotTypeFree},
		{Time: "21:00", Activity: "winding down", Emoji: "🛁", Type: SlotTypePersonal},
		{Time: "23:30", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
	},
	// Saturday
	6: {
		{Time: "00:00", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
		{Time: "09:30", Activity: "lazy morning", Emoji: "🥞", Type: SlotTypePersonal},
		{Time: "11:00", Activity: "errands and chores", Emoji: "🧺", Type: SlotTypePersonal},
		{Time: "14:00", Activity: "free time", Emoji: "🎨", Type: SlotTypeFree},
		{Time: "18:00", Activity: "catching up on coursework", Emoji: "✏️", Type: SlotTypeStudying},
		{Time: "20:00", Activity: "movie night", Emoji: "🎬", Type: SlotTypeFree},
		{Time: "23:30", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
	},
}

func weekdayTemplate() []ScheduleSlot {
	return []ScheduleSlot{
		{Time: "00:00", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
		{Time: "07:00", Activity: "morning routine", Emoji: "☀️", Type: SlotTypePersonal},
		{Time: "08:30", Activity: "commuting to campus", Emoji: "🚃", Type: SlotTypeCommute},
		{Time: "09:30", Activity: "morning lecture", Emoji: "📚", Type: SlotTypeClass},
		{Time: "12:30", Activity: "lunch break", Emoji: "🍙", Type: SlotTypeBreak},
		{Time: "13:30", Activity: "afternoon lecture", Emoji: "📚", Type: SlotTypeClass},
		{Time: "16:00", Activity: "library study", Emoji: "✏️", Type: SlotTypeStudying},
		{Time: "18:00", Activity: "commuting home", Emoji: "🚃", Type: SlotTypeCommute},
		{Time: "19:00", Activity: "free time", Emoji: "🎮", Type: SlotTypeFree},
		{Time: "23:00", Activity: "sleeping", Emoji: "😴", Type: SlotTypeSleep},
	}
}

// SeedDefaultWeek populates the schedule with the default week if, and only
// if, no slots exist yet
func (d *DB) SeedDefaultWeek() error {
	count, err := d.CountScheduleSlots()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for day, slots := range defaultWeek {
		if err := d.ReplaceScheduleDay(day, slots); err != nil {
			return err
		}
	}

	return nil
}
