package models

type VisionDoc struct {
	Vision  string   `json:"vision"`
	Mission string   `json:"mission"`
	Values  string   `json:"values"`
	Doing   []string `json:"doing"`
	Being   []string `json:"being"`
}

type VisionPatch struct {
	Vision  *string   `json:"vision"`
	Mission *string   `json:"mission"`
	Values  *string   `json:"values"`
	Doing   *[]string `json:"doing"`
	Being   *[]string `json:"being"`
}
