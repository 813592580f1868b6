package storage

import (
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

func DefaultSettings() models.SettingsDoc {
	return models.SettingsDoc{
		Theme:       "dark",
		CompactMode: false,
		Notifications: models.NotificationSettings{
			MeetingReminders:   true,
			DailyHabitReminder: true,
			WeeklySummary:      false,
		},
	}
}

func (s *Store) Settings() models.SettingsDoc {
	return kvstore.Read(s.kv, keySettings, DefaultSettings())
}

// SaveSettings merges shallowly at the top level and one level into
// notifications; deeper structure is replaced wholesale.
func (s *Store) SaveSettings(patch models.SettingsPatch) models.SettingsDoc {
	doc := s.Settings()
	if patch.Theme != nil {
		doc.Theme = *patch.Theme
	}
	if patch.CompactMode != nil {
		doc.CompactMode = *patch.CompactMode
	}
	if patch.Notifications != nil {
		n := patch.Notifications
		if n.MeetingReminders != nil {
			doc.Notifications.MeetingReminders = *n.MeetingReminders
		}
		if n.DailyHabitReminder != nil {
			doc.Notifications.DailyHabitReminder = *n.DailyHabitReminder
		}
		if n.WeeklySummary != nil {
			doc.Notifications.WeeklySummary = *n.WeeklySummary
		}
	}
	kvstore.Write(s.kv, keySettings, doc)
	return doc
}
