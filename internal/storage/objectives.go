package storage

import (
	"github.com/marek/mastermind-api/internal/ident"
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

type ObjectiveFilter struct {
	QuarterID string
	MemberID  string
}

func (s *Store) Objectives(f ObjectiveFilter) []models.Objective {
	objectives := kvstore.Read(s.kv, memberKey(keyObjectives, f.MemberID), []models.Objective{})
	if f.QuarterID == "" {
		return objectives
	}
	filtered := make([]models.Objective, 0, len(objectives))
	for _, o := range objectives {
		if o.QuarterID == f.QuarterID {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// SaveObjective appends to the self member's collection, assigning the next
// id and an order_index equal to the collection length at insertion time.
// Deletions are not renumbered, so indices may gap or repeat over time.
func (s *Store) SaveObjective(req models.CreateObjectiveRequest) models.Objective {
	objectives := s.Objectives(ObjectiveFilter{})
	objective := models.Objective{
		ID:         ident.New(),
		QuarterID:  req.QuarterID,
		Title:      req.Title,
		Weight:     req.Weight,
		Category:   req.Category,
		OrderIndex: len(objectives),
	}
	kvstore.Write(s.kv, keyObjectives, append(objectives, objective))
	return objective
}

// UpdateObjective merges the non-nil patch fields; an unknown id is a no-op.
func (s *Store) UpdateObjective(id string, patch models.ObjectivePatch) {
	objectives := s.Objectives(ObjectiveFilter{})
	for i := range objectives {
		if objectives[i].ID != id {
			continue
		}
		if patch.QuarterID != nil {
			objectives[i].QuarterID = *patch.QuarterID
		}
		if patch.Title != nil {
			objectives[i].Title = *patch.Title
		}
		if patch.Weight != nil {
			objectives[i].Weight = *patch.Weight
		}
		if patch.Category != nil {
			objectives[i].Category = *patch.Category
		}
		if patch.OrderIndex != nil {
			objectives[i].OrderIndex = *patch.OrderIndex
		}
		kvstore.Write(s.kv, keyObjectives, objectives)
		return
	}
}

// DeleteObjective removes the objective and every key result that references
// it. Tasks keep their objective_id; dangling references degrade silently.
func (s *Store) DeleteObjective(id string) {
	objectives := s.Objectives(ObjectiveFilter{})
	remaining := make([]models.Objective, 0, len(objectives))
	for _, o := range objectives {
		if o.ID != id {
			remaining = append(remaining, o)
		}
	}
	kvstore.Write(s.kv, keyObjectives, remaining)

	keyResults := s.KeyResults(KeyResultFilter{})
	kept := make([]models.KeyResult, 0, len(keyResults))
	for _, kr := range keyResults {
		if kr.ObjectiveID != id {
			kept = append(kept, kr)
		}
	}
	kvstore.Write(s.kv, keyKeyResults, kept)
}
