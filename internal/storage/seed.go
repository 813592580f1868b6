package storage

import (
	"time"

	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
	"github.com/marek/mastermind-api/internal/quarter"
)

// Seed installs demo data. It runs once from the composition root instead of
// hiding inside the read path: the self member's defaults go in only when the
// unscoped collections are empty, and each member's demo set only when that
// member has zero objectives. force wipes member-scoped keys first, so a
// forced seed is the only way to overwrite user-entered member data.
func (s *Store) Seed(force bool) {
	if force {
		s.wipeMemberData()
	}

	if len(s.Objectives(ObjectiveFilter{})) == 0 {
		s.seedSelfDefaults()
	}

	demo := memberDemoData()
	for _, member := range s.Members() {
		if member.ID == models.SelfMemberID {
			continue
		}
		data, ok := demo[member.ID]
		if !ok {
			continue
		}
		existing := s.Objectives(ObjectiveFilter{MemberID: member.ID})
		if len(existing) == 0 || force {
			kvstore.Write(s.kv, memberKey(keyObjectives, member.ID), data.objectives)
			kvstore.Write(s.kv, memberKey(keyKeyResults, member.ID), data.keyResults)
			kvstore.Write(s.kv, memberKey(keyTasks, member.ID), data.tasks)
			kvstore.Write(s.kv, memberKey(keyHabits, member.ID), data.habits)
		}
	}
}

// ResetMemberData clears the member list, the current-member selection, and
// every member-scoped collection, then reseeds from scratch.
func (s *Store) ResetMemberData() {
	s.kv.Delete(keyMembers)
	s.kv.Delete(keyCurrentMember)
	s.Seed(true)
}

func (s *Store) wipeMemberData() {
	for _, member := range s.Members() {
		if member.ID == models.SelfMemberID {
			continue
		}
		s.kv.Delete(memberKey(keyObjectives, member.ID))
		s.kv.Delete(memberKey(keyKeyResults, member.ID))
		s.kv.Delete(memberKey(keyTasks, member.ID))
		s.kv.Delete(memberKey(keyHabits, member.ID))
		s.kv.Delete(memberKey(keyHabitEntries, member.ID))
	}
}

func (s *Store) seedSelfDefaults() {
	qid := quarter.CurrentID()
	now := time.Now().Format(time.RFC3339)

	kvstore.Write(s.kv, keyMembers, DefaultMembers())
	kvstore.Write(s.kv, keyObjectives, []models.Objective{
		{ID: "obj-1", QuarterID: qid, Title: "Double protocol usage", Weight: 40, Category: "Growth", OrderIndex: 0},
		{ID: "obj-2", QuarterID: qid, Title: "Ship key integrations", Weight: 35, Category: "Technology", OrderIndex: 1},
		{ID: "obj-3", QuarterID: qid, Title: "Feel stability, health, peace", Weight: 25, Category: "Health", OrderIndex: 2},
	})
	kvstore.Write(s.kv, keyKeyResults, []models.KeyResult{
		{ID: "kr-1-1", ObjectiveID: "obj-1", Description: "Real Mainnet Orgs", CurrentValue: 61, TargetValue: 86, Unit: "orgs", OrderIndex: 0},
		{ID: "kr-1-2", ObjectiveID: "obj-1", Description: "Workshops booked", CurrentValue: 7, TargetValue: 12, Unit: "workshops", OrderIndex: 1},
		{ID: "kr-1-3", ObjectiveID: "obj-1", Description: "Revenue", CurrentValue: 133, TargetValue: 300, Unit: "$k", OrderIndex: 2},
		{ID: "kr-2-1", ObjectiveID: "obj-2", Description: "Farcaster integration", CurrentValue: 70, TargetValue: 100, Unit: "%", OrderIndex: 0},
		{ID: "kr-2-2", ObjectiveID: "obj-2", Description: "Safe/HSGv2 integration", CurrentValue: 50, TargetValue: 100, Unit: "%", OrderIndex: 1},
		{ID: "kr-3-1", ObjectiveID: "obj-3", Description: "Meditation streak", CurrentValue: 21, TargetValue: 30, Unit: "days", OrderIndex: 0},
		{ID: "kr-3-2", ObjectiveID: "obj-3", Description: "Exercise 3x/week", CurrentValue: 9, TargetValue: 12, Unit: "weeks", OrderIndex: 1},
	})
	kvstore.Write(s.kv, keyTasks, []models.Task{
		{ID: "task-1", WeekNumber: 2, QuarterID: qid, Description: "Review quarterly progress with team", Status: models.TaskCompleted, ObjectiveID: "obj-1", CreatedAt: now},
		{ID: "task-2", WeekNumber: 2, QuarterID: qid, Description: "Prepare workshop materials", Status: models.TaskPlanned, ObjectiveID: "obj-1", CreatedAt: now},
		{ID: "task-3", WeekNumber: 2, QuarterID: qid, Description: "Code review for integration PR", Status: models.TaskPlanned, ObjectiveID: "obj-2", CreatedAt: now},
		{ID: "task-4", WeekNumber: 2, QuarterID: qid, Description: "Schedule mid-quarter check-in", Status: models.TaskPlanned, CreatedAt: now},
	})
	kvstore.Write(s.kv, keyHabits, []models.Habit{
		{ID: "habit-1", Name: "Reflection", Emoji: "📝", IsActive: true, OrderIndex: 0},
		{ID: "habit-2", Name: "Meditation", Emoji: "🧘", IsActive: true, OrderIndex: 1},
		{ID: "habit-3", Name: "Exercise", Emoji: "💪", IsActive: true, OrderIndex: 2},
		{ID: "habit-4", Name: "Sleep 7h+", Emoji: "😴", IsActive: true, OrderIndex: 3},
		{ID: "habit-5", Name: "Gratitude", Emoji: "🙏", IsActive: true, OrderIndex: 4},
		{ID: "habit-6", Name: "No alcohol", Emoji: "🚫", IsActive: true, OrderIndex: 5},
	})
	kvstore.Write(s.kv, keyVision, DefaultVision())
	kvstore.Write(s.kv, keySettings, DefaultSettings())
}

type memberDataset struct {
	objectives []models.Objective
	keyResults []models.KeyResult
	tasks      []models.Task
	habits     []models.Habit
}

func memberDemoData() map[string]memberDataset {
	qid := quarter.CurrentID()
	now := time.Now().Format(time.RFC3339)
	return map[string]memberDataset{
		"member-2": { // Alex
			objectives: []models.Objective{
				{ID: "ax-obj-1", QuarterID: qid, Title: "Scale customer success", Weight: 45, Category: "Growth", OrderIndex: 0},
				{ID: "ax-obj-2", QuarterID: qid, Title: "Launch partner program", Weight: 30, Category: "Partnerships", OrderIndex: 1},
				{ID: "ax-obj-3", QuarterID: qid, Title: "Personal wellbeing focus", Weight: 25, Category: "Health", OrderIndex: 2},
			},
			keyResults: []models.KeyResult{
				{ID: "ax-kr-1-1", ObjectiveID: "ax-obj-1", Description: "NPS score", CurrentValue: 72, TargetValue: 80, Unit: "score", OrderIndex: 0},
				{ID: "ax-kr-1-2", ObjectiveID: "ax-obj-1", Description: "Customer retention", CurrentValue: 91, TargetValue: 95, Unit: "%", OrderIndex: 1},
				{ID: "ax-kr-2-1", ObjectiveID: "ax-obj-2", Description: "Partner deals closed", CurrentValue: 3, TargetValue: 5, Unit: "deals", OrderIndex: 0},
				{ID: "ax-kr-3-1", ObjectiveID: "ax-obj-3", Description: "Weekly runs", CurrentValue: 8, TargetValue: 12, Unit: "runs", OrderIndex: 0},
			},
			tasks: []models.Task{
				{ID: "ax-task-1", WeekNumber: 2, QuarterID: qid, Description: "Customer feedback review", Status: models.TaskCompleted, ObjectiveID: "ax-obj-1", CreatedAt: now},
				{ID: "ax-task-2", WeekNumber: 2, QuarterID: qid, Description: "Partner pitch deck update", Status: models.TaskPlanned, ObjectiveID: "ax-obj-2", CreatedAt: now},
			},
			habits: []models.Habit{
				{ID: "ax-habit-1", Name: "Running", Emoji: "🏃", IsActive: true, OrderIndex: 0},
				{ID: "ax-habit-2", Name: "Reading", Emoji: "📚", IsActive: true, OrderIndex: 1},
				{ID: "ax-habit-3", Name: "Deep work", Emoji: "🎯", IsActive: true, OrderIndex: 2},
			},
		},
		"member-3": { // Jordan
			objectives: []models.Objective{
				{ID: "jd-obj-1", QuarterID: qid, Title: "Ship mobile app v2", Weight: 50, Category: "Product", OrderIndex: 0},
				{ID: "jd-obj-2", QuarterID: qid, Title: "Reduce tech debt", Weight: 30, Category: "Engineering", OrderIndex: 1},
				{ID: "jd-obj-3", QuarterID: qid, Title: "Work-life balance", Weight: 20, Category: "Personal", OrderIndex: 2},
			},
			keyResults: []models.KeyResult{
				{ID: "jd-kr-1-1", ObjectiveID: "jd-obj-1", Description: "Features shipped", CurrentValue: 5, TargetValue: 8, Unit: "features", OrderIndex: 0},
				{ID: "jd-kr-1-2", ObjectiveID: "jd-obj-1", Description: "App store rating", CurrentValue: 4.2, TargetValue: 4.5, Unit: "stars", OrderIndex: 1},
				{ID: "jd-kr-2-1", ObjectiveID: "jd-obj-2", Description: "Test coverage", CurrentValue: 68, TargetValue: 80, Unit: "%", OrderIndex: 0},
				{ID: "jd-kr-3-1", ObjectiveID: "jd-obj-3", Description: "No weekend work weeks", CurrentValue: 7, TargetValue: 10, Unit: "weeks", OrderIndex: 0},
			},
			tasks: []models.Task{
				{ID: "jd-task-1", WeekNumber: 2, QuarterID: qid, Description: "Code review backlog", Status: models.TaskInProgress, ObjectiveID: "jd-obj-2", CreatedAt: now},
				{ID: "jd-task-2", WeekNumber: 2, QuarterID: qid, Description: "Feature flag cleanup", Status: models.TaskPlanned, ObjectiveID: "jd-obj-2", CreatedAt: now},
				{ID: "jd-task-3", WeekNumber: 2, QuarterID: qid, Description: "Sprint planning", Status: models.TaskCompleted, CreatedAt: now},
			},
			habits: []models.Habit{
				{ID: "jd-habit-1", Name: "Code review", Emoji: "💻", IsActive: true, OrderIndex: 0},
				{ID: "jd-habit-2", Name: "Gym", Emoji: "🏋️", IsActive: true, OrderIndex: 1},
				{ID: "jd-habit-3", Name: "Family time", Emoji: "👨‍👩‍👧", IsActive: true, OrderIndex: 2},
			},
		},
		"member-4": { // Sam
			objectives: []models.Objective{
				{ID: "sm-obj-1", QuarterID: qid, Title: "Launch new product line", Weight: 50, Category: "Product", OrderIndex: 0},
				{ID: "sm-obj-2", QuarterID: qid, Title: "Build thought leadership", Weight: 30, Category: "Marketing", OrderIndex: 1},
				{ID: "sm-obj-3", QuarterID: qid, Title: "Health & fitness goals", Weight: 20, Category: "Health", OrderIndex: 2},
			},
			keyResults: []models.KeyResult{
				{ID: "sm-kr-1-1", ObjectiveID: "sm-obj-1", Description: "Beta users onboarded", CurrentValue: 127, TargetValue: 200, Unit: "users", OrderIndex: 0},
				{ID: "sm-kr-1-2", ObjectiveID: "sm-obj-1", Description: "Feature completion", CurrentValue: 78, TargetValue: 100, Unit: "%", OrderIndex: 1},
				{ID: "sm-kr-1-3", ObjectiveID: "sm-obj-1", Description: "Bug-free release rate", CurrentValue: 94, TargetValue: 99, Unit: "%", OrderIndex: 2},
				{ID: "sm-kr-2-1", ObjectiveID: "sm-obj-2", Description: "Blog posts published", CurrentValue: 6, TargetValue: 12, Unit: "posts", OrderIndex: 0},
				{ID: "sm-kr-2-2", ObjectiveID: "sm-obj-2", Description: "Newsletter subscribers", CurrentValue: 2400, TargetValue: 5000, Unit: "subs", OrderIndex: 1},
				{ID: "sm-kr-3-1", ObjectiveID: "sm-obj-3", Description: "Workouts per week avg", CurrentValue: 3.2, TargetValue: 4, Unit: "/week", OrderIndex: 0},
				{ID: "sm-kr-3-2", ObjectiveID: "sm-obj-3", Description: "Sleep quality score", CurrentValue: 82, TargetValue: 90, Unit: "score", OrderIndex: 1},
			},
			tasks: []models.Task{
				{ID: "sm-task-1", WeekNumber: 2, QuarterID: qid, Description: "Finalize pricing strategy", Status: models.TaskCompleted, ObjectiveID: "sm-obj-1", CreatedAt: now},
				{ID: "sm-task-2", WeekNumber: 2, QuarterID: qid, Description: "Write product launch blog post", Status: models.TaskInProgress, ObjectiveID: "sm-obj-2", CreatedAt: now},
				{ID: "sm-task-3", WeekNumber: 2, QuarterID: qid, Description: "Review beta user feedback", Status: models.TaskPlanned, ObjectiveID: "sm-obj-1", CreatedAt: now},
				{ID: "sm-task-4", WeekNumber: 2, QuarterID: qid, Description: "Schedule podcast appearances", Status: models.TaskPlanned, ObjectiveID: "sm-obj-2", CreatedAt: now},
				{ID: "sm-task-5", WeekNumber: 2, QuarterID: qid, Description: "Book personal trainer session", Status: models.TaskCompleted, ObjectiveID: "sm-obj-3", CreatedAt: now},
			},
			habits: []models.Habit{
				{ID: "sm-habit-1", Name: "Morning workout", Emoji: "🏋️", IsActive: true, OrderIndex: 0},
				{ID: "sm-habit-2", Name: "Write 500 words", Emoji: "✍️", IsActive: true, OrderIndex: 1},
				{ID: "sm-habit-3", Name: "No social media before noon", Emoji: "📵", IsActive: true, OrderIndex: 2},
				{ID: "sm-habit-4", Name: "Read 30 min", Emoji: "📖", IsActive: true, OrderIndex: 3},
				{ID: "sm-habit-5", Name: "Gratitude journaling", Emoji: "🙏", IsActive: true, OrderIndex: 4},
			},
		},
	}
}
