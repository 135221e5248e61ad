package metrics

// RecordSpecSave records the outcome of a value save dispatch
func (m *Metrics) RecordSpecSave(fieldType, outcome string) {
	m.safeExecute("RecordSpecSave", func() {
		m.SpecSavesTotal.WithLabelValues(fieldType, outcome).Inc()
	})
}

// RecordFormatCacheHit increments the format cache hit counter
func (m *Metrics) RecordFormatCacheHit() {
	m.safeExecute("RecordFormatCacheHit", func() {
		m.FormatCacheHits.Inc()
	})
}

// RecordFormatCacheMiss increments the format cache miss counter
func (m *Metrics) RecordFormatCacheMiss() {
	m.safeExecute("RecordFormatCacheMiss", func() {
		m.FormatCacheMisses.Inc()
	})
}

// RecordMigrationRow records one migrated legacy row by status
func (m *Metrics) RecordMigrationRow(status string) {
	m.safeExecute("RecordMigrationRow", func() {
		m.MigrationRowsTotal.WithLabelValues(status).Inc()
	})
}

// SetProductsTotal sets the products gauge
func (m *Metrics) SetProductsTotal(count int64) {
	m.safeExecute("SetProductsTotal", func() {
		m.ProductsTotal.Set(float64(count))
	})
}

// SetFieldsTotal sets the field definitions gauge
func (m *Metrics) SetFieldsTotal(count int64) {
	m.safeExecute("SetFieldsTotal", func() {
		m.FieldsTotal.Set(float64(count))
	})
}

// SetTermsTotal sets the vocabulary terms gauge
func (m *Metrics) SetTermsTotal(count int64) {
	m.safeExecute("SetTermsTotal", func() {
		m.TermsTotal.Set(float64(count))
	})
}

// SetSpecValuesTotal sets the stored values gauge
func (m *Metrics) SetSpecValuesTotal(count int64) {
	m.safeExecute("SetSpecValuesTotal", func() {
		m.SpecValuesTotal.Set(float64(count))
	})
}
