package dto

// FieldTypeResponse describes one registered field type
type FieldTypeResponse struct {
	Slug         string   `json:"slug"`
	Label        string   `json:"label"`
	Description  string   `json:"description,omitempty"`
	Datatype     string   `json:"datatype"`
	Storage      string   `json:"storage"`
	Capabilities []string `json:"capabilities"`
}

// UnitResponse describes one measurement unit
type UnitResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
