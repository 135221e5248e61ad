package dto

import "github.com/google/uuid"

// MigrationMapping maps one legacy meta key onto a field definition
type MigrationMapping struct {
	LegacyKey string `json:"legacy_key" binding:"required,min=1,max=200"`
	FieldSlug string `json:"field_slug" binding:"required,min=1,max=100"`
}

// RunMigrationRequest represents the request to run the legacy import.
// ValueIndex selects which numeric token of the legacy text to take
// (first, second or last); UnitAliases maps legacy unit spellings onto
// registry unit codes.
type RunMigrationRequest struct {
	Mappings   []MigrationMapping `json:"mappings" binding:"required,min=1,dive"`
	DryRun     bool               `json:"dry_run"`
	ValueIndex string             `json:"value_index" binding:"omitempty,oneof=first second last"`
	UnitAliases map[string]string `json:"unit_aliases"`
	Export     bool               `json:"export"`
}

// MigrationRowResult reports the outcome for one legacy row
type MigrationRowResult struct {
	ProductID uuid.UUID `json:"product_id"`
	LegacyKey string    `json:"legacy_key"`
	FieldSlug string    `json:"field_slug"`
	Status    string    `json:"status"`
	RawText   string    `json:"raw_text,omitempty"`
	Value     any       `json:"value,omitempty"`
	Unit      string    `json:"unit,omitempty"`
}

// RunMigrationResponse summarizes a migration run
type RunMigrationResponse struct {
	DryRun    bool                 `json:"dry_run"`
	Counts    map[string]int       `json:"counts"`
	Rows      []MigrationRowResult `json:"rows"`
	ReportURL string               `json:"report_url,omitempty"`
}
