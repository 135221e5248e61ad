package units

// Unit is one measurement unit offered to field definitions.
type Unit struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ContributionFunc lets external code add, reorder or remove units.
type ContributionFunc func(units []Unit) []Unit

// Registry exposes the ordered unit table: the fixed built-in set, the
// shop's active currency appended, then any contributions applied.
// The registry is stateless and never errors.
type Registry struct {
	currency      Unit
	contributions []ContributionFunc
}

// NewRegistry creates a unit registry. currencyCode/currencyLabel come
// from the host platform's active currency; an empty code skips the
// currency entry.
func NewRegistry(currencyCode, currencyLabel string, contributions ...ContributionFunc) *Registry {
	if currencyLabel == "" {
		currencyLabel = currencyCode
	}
	return &Registry{
		currency:      Unit{Code: currencyCode, Label: currencyLabel},
		contributions: contributions,
	}
}

// GetUnits returns the ordered unit table.
func (r *Registry) GetUnits() []Unit {
	units := builtinUnits()
	if r.currency.Code != "" {
		units = append(units, r.currency)
	}
	for _, contribute := range r.contributions {
		if contribute == nil {
			continue
		}
		if result := contribute(units); result != nil {
			units = result
		}
	}
	return units
}

// Label returns the display label for a unit code, or false when the
// code is not present in the table.
func (r *Registry) Label(code string) (string, bool) {
	for _, u := range r.GetUnits() {
		if u.Code == code {
			return u.Label, true
		}
	}
	return "", false
}

// Has reports whether the code is present in the unit table.
func (r *Registry) Has(code string) bool {
	_, ok := r.Label(code)
	return ok
}

func builtinUnits() []Unit {
	return []Unit{
		{Code: "mm", Label: "mm"},
		{Code: "cm", Label: "cm"},
		{Code: "m", Label: "m"},
		{Code: "km", Label: "km"},
		{Code: "in", Label: "in"},
		{Code: "ft", Label: "ft"},
		{Code: "mg", Label: "mg"},
		{Code: "g", Label: "g"},
		{Code: "kg", Label: "kg"},
		{Code: "oz", Label: "oz"},
		{Code: "lb", Label: "lb"},
		{Code: "ml", Label: "ml"},
		{Code: "l", Label: "l"},
		{Code: "pct", Label: "%"},
		{Code: "pcs", Label: "pcs"},
	}
}
