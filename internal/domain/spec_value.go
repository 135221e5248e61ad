package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SpecValue is the flat-storage record for one (product, field) pair.
// Value holds the normalized JSON encoding of the stored value: a JSON
// string for text fields, a JSON number for number/integer fields, or a
// {"min":..,"max":..} object for range fields. Relational field values
// are not stored here; they live in product_spec_terms.
type SpecValue struct {
	BaseModel
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index:idx_spec_values_product_id;uniqueIndex:uq_spec_values_product_field,priority:1" json:"product_id"`
	FieldSlug string         `gorm:"type:varchar(100);not null;index:idx_spec_values_field_slug;uniqueIndex:uq_spec_values_product_field,priority:2" json:"field_slug"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	Product   *Product       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// TableName specifies the table name for SpecValue
func (SpecValue) TableName() string {
	return "spec_values"
}
