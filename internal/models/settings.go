package models

type NotificationSettings struct {
	MeetingReminders   bool `json:"meetingReminders"`
	DailyHabitReminder bool `json:"dailyHabitReminder"`
	WeeklySummary      bool `json:"weeklySummary"`
}

type SettingsDoc struct {
	Theme         string               `json:"theme"` // dark or light
	CompactMode   bool                 `json:"compactMode"`
	Notifications NotificationSettings `json:"notifications"`
}

// SettingsPatch merges shallowly at the top level and one level into
// notifications; a nil Notifications leaves the nested document untouched.
type SettingsPatch struct {
	Theme         *string             `json:"theme"`
	CompactMode   *bool               `json:"compactMode"`
	Notifications *NotificationsPatch `json:"notifications"`
}

type NotificationsPatch struct {
	MeetingReminders   *bool `json:"meetingReminders"`
	DailyHabitReminder *bool `json:"dailyHabitReminder"`
	WeeklySummary      *bool `json:"weeklySummary"`
}
