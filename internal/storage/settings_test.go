package storage

import (
	"testing"

	"github.com/marek/mastermind-api/internal/models"
)

func TestSettingsDefaults(t *testing.T) {
	s := newTestStore(t)
	doc := s.Settings()
	if doc.Theme != "dark" || !doc.Notifications.MeetingReminders {
		t.Errorf("defaults: got %+v", doc)
	}
}

func TestSaveSettingsShallowMerge(t *testing.T) {
	s := newTestStore(t)

	theme := "light"
	s.SaveSettings(models.SettingsPatch{Theme: &theme})

	doc := s.Settings()
	if doc.Theme != "light" {
		t.Errorf("theme: got %q, want light", doc.Theme)
	}
	if !doc.Notifications.DailyHabitReminder {
		t.Error("untouched notification flag changed")
	}
}

func TestSaveSettingsMergesOneLevelIntoNotifications(t *testing.T) {
	s := newTestStore(t)

	weekly := true
	s.SaveSettings(models.SettingsPatch{Notifications: &models.NotificationsPatch{WeeklySummary: &weekly}})

	doc := s.Settings()
	if !doc.Notifications.WeeklySummary {
		t.Error("weeklySummary not applied")
	}
	if !doc.Notifications.MeetingReminders || !doc.Notifications.DailyHabitReminder {
		t.Errorf("sibling notification flags changed: %+v", doc.Notifications)
	}
}

func TestVisionDefaultsAndMerge(t *testing.T) {
	s := newTestStore(t)

	if doc := s.Vision("member-2"); doc.Vision != "" || len(doc.Doing) != 0 {
		t.Errorf("member vision should default empty: %+v", doc)
	}
	if doc := s.Vision(""); doc.Mission == "" {
		t.Error("self vision should carry the default document")
	}

	mission := "ship the thing"
	s.SaveVision(models.VisionPatch{Mission: &mission})

	doc := s.Vision("")
	if doc.Mission != "ship the thing" {
		t.Errorf("mission: got %q", doc.Mission)
	}
	if doc.Vision == "" {
		t.Error("unpatched field was cleared")
	}
}
