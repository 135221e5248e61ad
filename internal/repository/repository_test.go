package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory sqlite database with the service
// schema. The tables are created by hand because the production column
// defaults are postgres expressions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	statements := []string{
		`CREATE TABLE products (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME,
			sku TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			group_id TEXT,
			parent_id TEXT
		)`,
		`CREATE TABLE product_groups (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE field_definitions (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME,
			slug TEXT NOT NULL UNIQUE,
			label TEXT NOT NULL,
			type TEXT NOT NULL,
			unit TEXT,
			hide_in_frontend BOOLEAN NOT NULL DEFAULT 0,
			show_links BOOLEAN NOT NULL DEFAULT 0,
			schema_property TEXT,
			variation_enabled BOOLEAN NOT NULL DEFAULT 0,
			display_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE field_definition_groups (
			field_definition_id TEXT NOT NULL,
			product_group_id TEXT NOT NULL,
			PRIMARY KEY (field_definition_id, product_group_id)
		)`,
		`CREATE TABLE spec_values (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME,
			product_id TEXT NOT NULL,
			field_slug TEXT NOT NULL,
			value TEXT NOT NULL,
			UNIQUE (product_id, field_slug)
		)`,
		`CREATE TABLE spec_terms (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME,
			field_slug TEXT NOT NULL,
			slug TEXT NOT NULL,
			name TEXT NOT NULL,
			UNIQUE (field_slug, slug)
		)`,
		`CREATE TABLE product_spec_terms (
			id TEXT PRIMARY KEY,
			product_id TEXT NOT NULL,
			term_id TEXT NOT NULL,
			field_slug TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			UNIQUE (product_id, term_id)
		)`,
		`CREATE TABLE legacy_meta (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME,
			product_id TEXT NOT NULL,
			meta_key TEXT NOT NULL,
			meta_value TEXT,
			UNIQUE (product_id, meta_key)
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Net Weight", "net-weight"},
		{"weight", "weight"},
		{"  Trimmed  ", "trimmed"},
		{"Navy & Blue", "navy-blue"},
		{"UPPER_case.mixed", "upper-case-mixed"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, Slugify(tt.input), tt.input)
	}
}
