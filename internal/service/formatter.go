package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"product-spec-api/internal/cache"
	"product-spec-api/internal/domain"
	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/hooks"
	"product-spec-api/internal/metrics"
	"product-spec-api/internal/repository"
	"product-spec-api/internal/units"
	"product-spec-api/internal/value"
)

// rangeSeparator joins the two sides of a range value with an en dash.
const rangeSeparator = " – "

// ValueFormatter renders a product field's value for display.
type ValueFormatter interface {
	// Format renders the value behind a field slug. Unknown slugs
	// render as the empty string unless the format extension supplies
	// output.
	Format(ctx context.Context, productID uuid.UUID, slug string) (string, error)
	// FormatField renders the value of a known field definition.
	FormatField(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition) (string, error)
}

// valueFormatterImpl implements ValueFormatter
type valueFormatterImpl struct {
	registry  *fieldtype.Registry
	units     *units.Registry
	fieldRepo repository.FieldDefinitionRepository
	termRepo  repository.TermRepository
	resolver  ValueResolver
	hooks     *hooks.Hooks
	cache     *cache.FormatCache
	locale    *value.LocaleFormatter
	basePath  string
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewValueFormatter creates a new instance of ValueFormatter. basePath
// prefixes generated term links; cache and m may be nil.
func NewValueFormatter(
	registry *fieldtype.Registry,
	unitRegistry *units.Registry,
	fieldRepo repository.FieldDefinitionRepository,
	termRepo repository.TermRepository,
	resolver ValueResolver,
	h *hooks.Hooks,
	formatCache *cache.FormatCache,
	locale *value.LocaleFormatter,
	basePath string,
	m *metrics.Metrics,
	logger *zap.Logger,
) ValueFormatter {
	return &valueFormatterImpl{
		registry:  registry,
		units:     unitRegistry,
		fieldRepo: fieldRepo,
		termRepo:  termRepo,
		resolver:  resolver,
		hooks:     h,
		cache:     formatCache,
		locale:    locale,
		basePath:  strings.TrimSuffix(basePath, "/"),
		metrics:   m,
		logger:    logger,
	}
}

// Format looks up the field definition and renders its value. For an
// unknown slug the format extension still runs, with a nil field and
// an empty core rendering, so external fields can display themselves.
func (s *valueFormatterImpl) Format(ctx context.Context, productID uuid.UUID, slug string) (string, error) {
	field, err := s.fieldRepo.FindBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if field == nil {
		raw, _ := s.hooks.ResolveExternal(ctx, productID, slug)
		return s.hooks.WrapFormatted(ctx, "", raw, nil, productID, false), nil
	}
	return s.FormatField(ctx, productID, field)
}

// FormatField renders a known field's value: resolve, render per type,
// append the unit, then hand the result to the format extension. The
// final string is cached per (product, field) and served from cache
// until a save invalidates the product.
func (s *valueFormatterImpl) FormatField(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition) (string, error) {
	if cached, ok := s.cache.Get(ctx, productID, field.Slug); ok {
		if s.metrics != nil {
			s.metrics.RecordFormatCacheHit()
		}
		return cached, nil
	}
	if s.metrics != nil {
		s.metrics.RecordFormatCacheMiss()
	}

	raw, err := s.resolver.Resolve(ctx, productID, field.Slug)
	if err != nil {
		return "", err
	}

	ft, known := s.registry.Get(field.Type)
	links := known && field.ShowLinks && ft.HasCapability(fieldtype.CapabilityLink)

	var formatted string
	switch {
	case !known:
		// A definition whose type vanished from the registry renders
		// as plain text so stored data stays visible.
		formatted = s.formatText(raw)
	case ft.FormatOverride != nil:
		formatted, err = ft.FormatOverride(ctx, productID, field, raw)
		if err != nil {
			return "", err
		}
	case ft.IsRelational():
		formatted, err = s.formatRelational(ctx, field, raw, links)
		if err != nil {
			return "", err
		}
	default:
		formatted = s.formatFlat(ft, raw)
	}

	if formatted != "" && known && field.Unit != "" && ft.HasCapability(fieldtype.CapabilityUnit) {
		formatted = formatted + " " + s.unitLabel(field.Unit)
	}

	formatted = s.hooks.WrapFormatted(ctx, formatted, raw, field, productID, links)
	s.cache.Set(ctx, productID, field.Slug, formatted)
	return formatted, nil
}

// formatFlat renders a flat-storage value for its type.
func (s *valueFormatterImpl) formatFlat(ft fieldtype.FieldType, raw any) string {
	if value.IsEmpty(raw) {
		return ""
	}

	switch ft.Slug {
	case fieldtype.TypeNumber:
		if f, ok := value.ParseFloat(raw); ok {
			return s.locale.Float(f)
		}
		return ""
	case fieldtype.TypeInteger:
		if n, ok := value.ParseInt(raw); ok {
			return s.locale.Int(n)
		}
		return ""
	case fieldtype.TypeMinMax:
		return s.formatRange(raw)
	default:
		return s.formatText(raw)
	}
}

// formatRange renders a range value. One-sided ranges render the
// present side alone, without a dangling separator.
func (s *valueFormatterImpl) formatRange(raw any) string {
	m, ok := raw.(value.MinMax)
	if !ok {
		if p, isPtr := raw.(*value.MinMax); isPtr && p != nil {
			m = *p
		} else {
			return ""
		}
	}

	var parts []string
	if m.Min != nil {
		parts = append(parts, s.locale.Float(*m.Min))
	}
	if m.Max != nil {
		parts = append(parts, s.locale.Float(*m.Max))
	}
	return strings.Join(parts, rangeSeparator)
}

// formatRelational renders assigned term names in assignment order,
// comma-separated, optionally wrapped in term archive links.
func (s *valueFormatterImpl) formatRelational(ctx context.Context, field *domain.FieldDefinition, raw any, links bool) (string, error) {
	ids := termIDs(raw)
	if len(ids) == 0 {
		return "", nil
	}

	terms, err := s.termRepo.FindByIDs(ctx, ids)
	if err != nil {
		return "", err
	}
	byID := make(map[uuid.UUID]*domain.SpecTerm, len(terms))
	for _, t := range terms {
		byID[t.ID] = t
	}

	rendered := make([]string, 0, len(ids))
	for _, id := range ids {
		term, ok := byID[id]
		if !ok {
			continue
		}
		if links {
			rendered = append(rendered, s.termLink(field, term))
		} else {
			rendered = append(rendered, term.Name)
		}
	}
	return strings.Join(rendered, ", "), nil
}

// formatText renders any leftover raw value as plain text.
func (s *valueFormatterImpl) formatText(raw any) string {
	if value.IsEmpty(raw) {
		return ""
	}
	if str, ok := raw.(string); ok {
		return str
	}
	return fmt.Sprint(raw)
}

// termLink renders one term as an anchor to its archive page.
func (s *valueFormatterImpl) termLink(field *domain.FieldDefinition, term *domain.SpecTerm) string {
	href := fmt.Sprintf("%s/fields/%s/terms/%s", s.basePath, field.Slug, term.Slug)
	return fmt.Sprintf(`<a href="%s">%s</a>`, href, html.EscapeString(term.Name))
}

// unitLabel resolves a unit code to its display label, falling back to
// the raw code for units removed from the registry after use.
func (s *valueFormatterImpl) unitLabel(code string) string {
	if label, ok := s.units.Label(code); ok {
		return label
	}
	return code
}

// termIDs extracts the term ID list from a relational raw value.
func termIDs(raw any) []uuid.UUID {
	switch t := raw.(type) {
	case uuid.UUID:
		return []uuid.UUID{t}
	case []uuid.UUID:
		return t
	default:
		return nil
	}
}
