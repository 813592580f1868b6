package models

type KeyResult struct {
	ID           string  `json:"id"`
	ObjectiveID  string  `json:"objective_id"`
	Description  string  `json:"description"`
	CurrentValue float64 `json:"current_value"`
	TargetValue  float64 `json:"target_value"`
	Unit         string  `json:"unit"`
	OrderIndex   int     `json:"order_index"`
}

type CreateKeyResultRequest struct {
	ObjectiveID  string  `json:"objective_id"`
	Description  string  `json:"description"`
	CurrentValue float64 `json:"current_value"`
	TargetValue  float64 `json:"target_value"`
	Unit         string  `json:"unit"`
}

type KeyResultPatch struct {
	ObjectiveID  *string  `json:"objective_id"`
	Description  *string  `json:"description"`
	CurrentValue *float64 `json:"current_value"`
	TargetValue  *float64 `json:"target_value"`
	Unit         *string  `json:"unit"`
	OrderIndex   *int     `json:"order_index"`
}
