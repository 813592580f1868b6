package storage

import (
	"github.com/marek/mastermind-api/internal/kvstore"
	"github.com/marek/mastermind-api/internal/models"
)

func DefaultVision() models.VisionDoc {
	return models.VisionDoc{
		Vision:  "Help humanity transition to a post-scarcity economy by creating sovereignty-respecting coordination mechanisms.",
		Mission: "Establish Hats Protocol as the go-to infrastructure for roles in web3 and beyond.",
		Values:  "Craft, Ownership, Being a Creator not Consumer. Health, Wealth, Freedom. Integrity, Gratitude, Presence, Wholeness, Graceful Execution.",
		Doing:   []string{"Build products that matter", "Create financial abundance", "Contribute to community"},
		Being:   []string{"Present and grounded", "Grateful and generous", "Integrated and whole"},
	}
}

// Vision returns the member's singleton document. Non-self members with no
// stored document get an empty one, the self member gets the defaults.
func (s *Store) Vision(memberID string) models.VisionDoc {
	def := models.VisionDoc{Doing: []string{}, Being: []string{}}
	if memberID == "" || memberID == models.SelfMemberID {
		def = DefaultVision()
	}
	return kvstore.Read(s.kv, memberKey(keyVision, memberID), def)
}

// SaveVision shallow-merges the patch into the self member's document.
func (s *Store) SaveVision(patch models.VisionPatch) models.VisionDoc {
	doc := s.Vision("")
	if patch.Vision != nil {
		doc.Vision = *patch.Vision
	}
	if patch.Mission != nil {
		doc.Mission = *patch.Mission
	}
	if patch.Values != nil {
		doc.Values = *patch.Values
	}
	if patch.Doing != nil {
		doc.Doing = *patch.Doing
	}
	if patch.Being != nil {
		doc.Being = *patch.Being
	}
	kvstore.Write(s.kv, keyVision, doc)
	return doc
}
