package models

type Objective struct {
	ID         string `json:"id"`
	QuarterID  string `json:"quarter_id"`
	Title      string `json:"title"`
	Weight     int    `json:"weight"` // 0-100, relative priority; not forced to sum to 100
	Category   string `json:"category"`
	OrderIndex int    `json:"order_index"`
}

type CreateObjectiveRequest struct {
	QuarterID string `json:"quarter_id"`
	Title     string `json:"title"`
	Weight    int    `json:"weight"`
	Category  string `json:"category"`
}

type ObjectivePatch struct {
	QuarterID  *string `json:"quarter_id"`
	Title      *string `json:"title"`
	Weight     *int    `json:"weight"`
	Category   *string `json:"category"`
	OrderIndex *int    `json:"order_index"`
}
