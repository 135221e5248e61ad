package domain

import "github.com/google/uuid"

// LegacyMeta is an imported row of free-text metadata from the previous
// catalog system, consumed only by the one-time migration tool.
type LegacyMeta struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_legacy_meta_product_id;uniqueIndex:uq_legacy_meta_product_key,priority:1" json:"product_id"`
	MetaKey   string    `gorm:"type:varchar(200);not null;uniqueIndex:uq_legacy_meta_product_key,priority:2" json:"meta_key"`
	MetaValue string    `gorm:"type:text" json:"meta_value"`
}

// TableName specifies the table name for LegacyMeta
func (LegacyMeta) TableName() string {
	return "legacy_meta"
}
