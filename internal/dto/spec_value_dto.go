package dto

// SaveSpecValueRequest represents the request to save one field value.
// Value carries the raw input in whatever JSON shape the field type
// accepts; null deletes the stored value.
type SaveSpecValueRequest struct {
	Value any `json:"value"`
}

// BatchSaveSpecValuesRequest represents the request to save several
// field values of one product in a single call
type BatchSaveSpecValuesRequest struct {
	Values map[string]any `json:"values" binding:"required"`
}

// SpecValueResponse represents one resolved field value.
// SchemaProperty names the structured-data property the value maps to,
// when the field definition declares one.
type SpecValueResponse struct {
	FieldSlug      string `json:"field_slug"`
	Label          string `json:"label,omitempty"`
	Raw            any    `json:"raw"`
	Formatted      string `json:"formatted"`
	SchemaProperty string `json:"schema_property,omitempty"`
}

// SaveSpecValueResponse reports the outcome of a save dispatch
type SaveSpecValueResponse struct {
	FieldSlug string `json:"field_slug"`
	Saved     bool   `json:"saved"`
}

// BatchSaveSpecValuesResponse reports per-field outcomes of a batch save
type BatchSaveSpecValuesResponse struct {
	Results []SaveSpecValueResponse `json:"results"`
}
