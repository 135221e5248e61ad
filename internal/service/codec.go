package service

import (
	"encoding/json"

	"gorm.io/datatypes"

	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/value"
)

// encodeFlatValue encodes a normalized raw value as the stored JSON
// document. Callers normalize first; anything json.Marshal accepts is
// storable.
func encodeFlatValue(raw any) (datatypes.JSON, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

// decodeFlatValue decodes a stored JSON document back into the raw
// representation the field type promises: string for text, float64 for
// number, int64 for integer, value.MinMax for ranges. Documents that do
// not match the declared shape decode to nil, which reads as "no
// value" rather than an error.
func decodeFlatValue(data datatypes.JSON, ft fieldtype.FieldType) any {
	if len(data) == 0 {
		return nil
	}

	switch ft.Slug {
	case fieldtype.TypeNumber:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return nil
		}
		return f
	case fieldtype.TypeInteger:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return nil
		}
		return int64(f)
	case fieldtype.TypeMinMax:
		var m value.MinMax
		if err := json.Unmarshal(data, &m); err != nil {
			return nil
		}
		if m.IsZero() {
			return nil
		}
		return m
	default:
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
		// Contributed types may store arbitrary JSON documents.
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil
		}
		return v
	}
}
