package storage

import (
	"github.com/marek/mastermind-api/internal/ident"
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

type KeyResultFilter struct {
	ObjectiveID string
	MemberID    string
}

func (s *Store) KeyResults(f KeyResultFilter) []models.KeyResult {
	keyResults := kvstore.Read(s.kv, memberKey(keyKeyResults, f.MemberID), []models.KeyResult{})
	if f.ObjectiveID == "" {
		return keyResults
	}
	filtered := make([]models.KeyResult, 0, len(keyResults))
	for _, kr := range keyResults {
		if kr.ObjectiveID == f.ObjectiveID {
			filtered = append(filtered, kr)
		}
	}
	return filtered
}

// SaveKeyResult assigns order_index within the owning objective's scope:
// the count of that objective's key results at insertion time.
func (s *Store) SaveKeyResult(req models.CreateKeyResultRequest) models.KeyResult {
	keyResults := s.KeyResults(KeyResultFilter{})
	siblings := 0
	for _, kr := range keyResults {
		if kr.ObjectiveID == req.ObjectiveID {
			siblings++
		}
	}
	keyResult := models.KeyResult{
		ID:           ident.New(),
		ObjectiveID:  req.ObjectiveID,
		Description:  req.Description,
		CurrentValue: req.CurrentValue,
		TargetValue:  req.TargetValue,
		Unit:         req.Unit,
		OrderIndex:   siblings,
	}
	kvstore.Write(s.kv, keyKeyResults, append(keyResults, keyResult))
	return keyResult
}

func (s *Store) UpdateKeyResult(id string, patch models.KeyResultPatch) {
	keyResults := s.KeyResults(KeyResultFilter{})
	for i := range keyResults {
		if keyResults[i].ID != id {
			continue
		}
		if patch.ObjectiveID != nil {
			keyResults[i].ObjectiveID = *patch.ObjectiveID
		}
		if patch.Description != nil {
			keyResults[i].Description = *patch.Description
		}
		if patch.CurrentValue != nil {
			keyResults[i].CurrentValue = *patch.CurrentValue
		}
		if patch.TargetValue != nil {
			keyResults[i].TargetValue = *patch.TargetValue
		}
		if patch.Unit != nil {
			keyResults[i].Unit = *patch.Unit
		}
		if patch.OrderIndex != nil {
			keyResults[i].OrderIndex = *patch.OrderIndex
		}
		kvstore.Write(s.kv, keyKeyResults, keyResults)
		return
	}
}

func (s *Store) DeleteKeyResult(id string) {
	keyResults := s.KeyResults(KeyResultFilter{})
	remaining := make([]models.KeyResult, 0, len(keyResults))
	for _, kr := range keyResults {
		if kr.ID != id {
			remaining = append(remaining, kr)
		}
	}
	kvstore.Write(s.kv, keyKeyResults, remaining)
}
