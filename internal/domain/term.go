package domain

import "github.com/google/uuid"

// SpecTerm is one entry of a relational field's shared vocabulary.
// Terms are namespaced by field slug; the same name may exist under two
// different fields as two distinct terms.
type SpecTerm struct {
	BaseModel
	FieldSlug string `gorm:"type:varchar(100);not null;index:idx_spec_terms_field_slug;uniqueIndex:uq_spec_terms_field_slug_slug,priority:1" json:"field_slug"`
	Slug      string `gorm:"type:varchar(200);not null;uniqueIndex:uq_spec_terms_field_slug_slug,priority:2" json:"slug"`
	Name      string `gorm:"type:varchar(200);not null" json:"name"`
}

// ProductSpecTerm assigns a vocabulary term to a product. Position
// preserves the submitted order so multi-value reads are stable.
type ProductSpecTerm struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_product_spec_terms_product_id;uniqueIndex:uq_product_spec_terms_product_term,priority:1" json:"product_id"`
	TermID    uuid.UUID `gorm:"type:uuid;not null;index:idx_product_spec_terms_term_id;uniqueIndex:uq_product_spec_terms_product_term,priority:2" json:"term_id"`
	FieldSlug string    `gorm:"type:varchar(100);not null;index:idx_product_spec_terms_field_slug" json:"field_slug"`
	Position  int       `gorm:"type:int;not null;default:0" json:"position"`
	Term      *SpecTerm `gorm:"foreignKey:TermID;constraint:OnDelete:CASCADE" json:"term,omitempty"`
}

// TableName specifies the table name for SpecTerm
func (SpecTerm) TableName() string {
	return "spec_terms"
}

// TableName specifies the table name for ProductSpecTerm
func (ProductSpecTerm) TableName() string {
	return "product_spec_terms"
}
