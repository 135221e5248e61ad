package domain

import "github.com/google/uuid"

// Product represents a catalog product or one of its variants.
// A variant is a product whose ParentID points at its parent product;
// variants inherit specification values from the parent unless they
// carry their own (variation fallback).
type Product struct {
	BaseModel
	SKU      string        `gorm:"type:varchar(100);not null;uniqueIndex:uq_products_sku" json:"sku"`
	Name     string        `gorm:"type:varchar(255);not null" json:"name"`
	GroupID  *uuid.UUID    `gorm:"type:uuid;index:idx_products_group_id" json:"group_id"`
	ParentID *uuid.UUID    `gorm:"type:uuid;index:idx_products_parent_id" json:"parent_id"`
	Group    *ProductGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	Parent   *Product      `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"parent,omitempty"`
	Variants []Product     `gorm:"foreignKey:ParentID" json:"variants,omitempty"`
}

// IsVariant reports whether the product is a variant of another product.
func (p *Product) IsVariant() bool {
	return p.ParentID != nil
}

// ProductGroup represents a product-group schema entry. A field
// definition restricted to a set of groups is only visible for products
// assigned to one of those groups.
type ProductGroup struct {
	BaseModel
	Slug string `gorm:"type:varchar(100);not null;uniqueIndex:uq_product_groups_slug" json:"slug"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// TableName specifies the table name for ProductGroup
func (ProductGroup) TableName() string {
	return "product_groups"
}
