package domain

// FieldDefinition represents an admin-declared specification field.
// Type references a field type in the registry by slug; Unit, ShowLinks
// and VariationEnabled are only meaningful when the referenced type
// declares the matching capability.
type FieldDefinition struct {
	BaseModel
	Slug             string         `gorm:"type:varchar(100);not null;uniqueIndex:uq_field_definitions_slug" json:"slug"`
	Label            string         `gorm:"type:varchar(255);not null" json:"label"`
	Type             string         `gorm:"type:varchar(50);not null;index:idx_field_definitions_type" json:"type"`
	Unit             string         `gorm:"type:varchar(20)" json:"unit"`
	HideInFrontend   bool           `gorm:"not null;default:false" json:"hide_in_frontend"`
	ShowLinks        bool           `gorm:"not null;default:false" json:"show_links"`
	SchemaProperty   string         `gorm:"type:varchar(100)" json:"schema_property"`
	VariationEnabled bool           `gorm:"not null;default:false" json:"variation_enabled"`
	DisplayOrder     int            `gorm:"type:int;not null;default:0;index:idx_field_definitions_display_order" json:"display_order"`
	Groups           []ProductGroup `gorm:"many2many:field_definition_groups;constraint:OnDelete:CASCADE" json:"groups,omitempty"`
}

// AppliesToGroup reports whether the field is visible for the given
// product group. An empty Groups set means the field applies globally.
func (f *FieldDefinition) AppliesToGroup(groupSlug string) bool {
	if len(f.Groups) == 0 {
		return true
	}
	for _, g := range f.Groups {
		if g.Slug == groupSlug {
			return true
		}
	}
	return false
}

// TableName specifies the table name for FieldDefinition
func (FieldDefinition) TableName() string {
	return "field_definitions"
}
