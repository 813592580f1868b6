package models

type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

// SelfMemberID is the primary user. Their data lives under unscoped storage
// keys; every other member's data is keyed by member id.
const SelfMemberID = "member-1"

type CreateMemberRequest struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Color    string `json:"color"`
}
