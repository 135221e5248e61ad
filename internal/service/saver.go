package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"product-spec-api/internal/domain"
	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/hooks"
	"product-spec-api/internal/metrics"
	"product-spec-api/internal/repository"
	"product-spec-api/internal/value"
)

// Save dispatch outcomes, recorded per field type.
const (
	saveOutcomeSaved       = "saved"
	saveOutcomeDeleted     = "deleted"
	saveOutcomeExternal    = "external"
	saveOutcomeUnclaimed   = "unclaimed"
	saveOutcomeMissingType = "missing_type"
	saveOutcomeOverride    = "override"
)

// ValueSaver persists a raw incoming value for one product field.
type ValueSaver interface {
	// Save dispatches a write. The boolean reports whether a handler
	// accepted the write; false is "nobody handled this", not an
	// error. An empty value deletes the stored record, and deleting
	// an absent record still reports true.
	Save(ctx context.Context, productID uuid.UUID, slug string, raw any) (bool, error)
}

// saveHandler is one type-specific save routine.
type saveHandler func(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (bool, error)

// valueSaverImpl implements ValueSaver
type valueSaverImpl struct {
	registry    *fieldtype.Registry
	fieldRepo   repository.FieldDefinitionRepository
	valueRepo   repository.SpecValueRepository
	termRepo    repository.TermRepository
	productRepo repository.ProductRepository
	hooks       *hooks.Hooks
	metrics     *metrics.Metrics
	logger      *zap.Logger
	handlers    map[string]saveHandler
}

// NewValueSaver creates a new instance of ValueSaver. m may be nil.
func NewValueSaver(
	registry *fieldtype.Registry,
	fieldRepo repository.FieldDefinitionRepository,
	valueRepo repository.SpecValueRepository,
	termRepo repository.TermRepository,
	productRepo repository.ProductRepository,
	h *hooks.Hooks,
	m *metrics.Metrics,
	logger *zap.Logger,
) ValueSaver {
	s := &valueSaverImpl{
		registry:    registry,
		fieldRepo:   fieldRepo,
		valueRepo:   valueRepo,
		termRepo:    termRepo,
		productRepo: productRepo,
		hooks:       h,
		metrics:     m,
		logger:      logger,
	}
	s.handlers = map[string]saveHandler{
		fieldtype.TypeText:         s.saveText,
		fieldtype.TypeNumber:       s.saveNumber,
		fieldtype.TypeInteger:      s.saveInteger,
		fieldtype.TypeMinMax:       s.saveMinMax,
		fieldtype.TypeSelect:       s.saveSelect,
		fieldtype.TypeMultiSelect:  s.saveMultiValue,
		fieldtype.TypeAutocomplete: s.saveAutocomplete,
	}
	return s
}

// Save implements the write dispatch. Caches are invalidated before
// the write so readers racing the save re-derive from storage rather
// than serve the value being replaced.
func (s *valueSaverImpl) Save(ctx context.Context, productID uuid.UUID, slug string, raw any) (bool, error) {
	field, err := s.fieldRepo.FindBySlug(ctx, slug)
	if err != nil {
		return false, err
	}
	if field == nil {
		saved, claimed := s.hooks.SaveExternal(ctx, productID, slug, raw)
		if !claimed {
			s.record("", saveOutcomeUnclaimed)
			return false, nil
		}
		s.record("", saveOutcomeExternal)
		if saved {
			s.hooks.NotifyInvalidation(ctx, productID)
		}
		return saved, nil
	}

	ft, ok := s.registry.Get(field.Type)
	if !ok {
		s.logger.Warn("save skipped, field references unknown type",
			zap.String("field_slug", field.Slug),
			zap.String("field_type", field.Type),
		)
		s.record(field.Type, saveOutcomeMissingType)
		return false, nil
	}

	// Relational assignments live at the parent product; a write
	// addressed to a variant lands there.
	targetID := productID
	if ft.IsRelational() {
		ownerID, err := relationalOwnerID(ctx, s.productRepo, productID)
		if err != nil {
			return false, err
		}
		targetID = ownerID
	}

	s.hooks.NotifyInvalidation(ctx, productID)
	if targetID != productID {
		s.hooks.NotifyInvalidation(ctx, targetID)
	}

	if ft.SaveOverride != nil {
		s.record(ft.Slug, saveOutcomeOverride)
		return ft.SaveOverride(ctx, productID, field, raw)
	}

	if value.IsEmpty(raw) {
		if err := s.clear(ctx, targetID, field.Slug, ft); err != nil {
			return false, err
		}
		s.record(ft.Slug, saveOutcomeDeleted)
		return true, nil
	}

	handler, ok := s.handlers[ft.Slug]
	if !ok {
		// Contributed types without an override fall back to the text
		// routine for flat storage and the multi-value routine for
		// relational storage.
		if ft.IsRelational() {
			handler = s.saveMultiValue
		} else {
			handler = s.saveText
		}
	}

	saved, err := handler(ctx, targetID, field, raw)
	if err != nil {
		return false, err
	}
	s.record(ft.Slug, saveOutcomeSaved)
	return saved, nil
}

// clear removes the stored value for a field, in whichever storage the
// type uses. Clearing an absent value is a no-op.
func (s *valueSaverImpl) clear(ctx context.Context, productID uuid.UUID, slug string, ft fieldtype.FieldType) error {
	if ft.IsRelational() {
		return s.termRepo.ReplaceAssignments(ctx, productID, slug, nil)
	}
	return s.valueRepo.Delete(ctx, productID, slug)
}

// store encodes and upserts a flat value.
func (s *valueSaverImpl) store(ctx context.Context, productID uuid.UUID, slug string, raw any) (bool, error) {
	encoded, err := encodeFlatValue(raw)
	if err != nil {
		return false, err
	}
	if err := s.valueRepo.Upsert(ctx, &domain.SpecValue{
		ProductID: productID,
		FieldSlug: slug,
		Value:     encoded,
	}); err != nil {
		return false, err
	}
	return true, nil
}

// saveText stores the trimmed string rendering of the input. An input
// that trims to nothing deletes the stored value.
func (s *valueSaverImpl) saveText(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (bool, error) {
	text := strings.TrimSpace(fmt.Sprint(raw))
	if text == "" {
		if err := s.valueRepo.Delete(ctx, productID, field.Slug); err != nil {
			return false, err
		}
		return true, nil
	}
	return s.store(ctx, productID, field.Slug, text)
}

// saveNumber normalizes and stores a decimal. Unparsable input deletes
// the stored value; submitting garbage into a numeric field clears it.
func (s *valueSaverImpl) saveNumber(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (bool, error) {
	f, ok := value.ParseFloat(raw)
	if !ok {
		if err := s.valueRepo.Delete(ctx, productID, field.Slug); err != nil {
			return false, err
		}
		return true, nil
	}
	return s.store(ctx, productID, field.Slug, f)
}

// saveInteger stores a whole number, truncating fractional input.
func (s *valueSaverImpl) saveInteger(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (bool, error) {
	n, ok := value.ParseInt(raw)
	if !ok {
		if err := s.valueRepo.Delete(ctx, productID, field.Slug); err != nil {
			return false, err
		}
		return true, nil
	}
	return s.store(ctx, productID, field.Slug, n)
}

// saveMinMax normalizes both sides of a range independently. A side
// that fails to parse is dropped; a range left with no sides deletes
// the stored value.
func (s *valueSaverImpl) saveMinMax(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (bool, error) {
	m := parseMinMax(raw)
	if m.IsZero() {
		if err := s.valueRepo.Delete(ctx, productID, field.Slug); err != nil {
			return false, err
		}
		return true, nil
	}
	return s.store(ctx, productID, field.Slug, m)
}

// saveSelect replaces the assignment with the single resolved term.
// Array input keeps only the first entry; input resolving to no term
// clears the assignment.
func (s *valueSaverImpl) saveSelect(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (bool, error) {
	entries := stringEntries(raw)
	if len(entries) > 1 {
		entries = entries[:1]
	}

	ids, err := s.resolveTerms(ctx, field.Slug, entries, false)
	if err != nil {
		return false, err
	}
	if err := s.termRepo.ReplaceAssignments(ctx, productID, field.Slug, ids); err != nil {
		return false, err
	}
	return true, nil
}

// saveMultiValue replaces the assignment with the full resolved set.
// Entries that resolve to no existing term are dropped, not created.
func (s *valueSaverImpl) saveMultiValue(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (bool, error) {
	ids, err := s.resolveTerms(ctx, field.Slug, stringEntries(raw), false)
	if err != nil {
		return false, err
	}
	if err := s.termRepo.ReplaceAssignments(ctx, productID, field.Slug, ids); err != nil {
		return false, err
	}
	return true, nil
}

// saveAutocomplete replaces the assignment like saveMultiValue but
// creates vocabulary terms for entries that do not exist yet.
func (s *valueSaverImpl) saveAutocomplete(ctx context.Context, productID uuid.UUID, field *domain.FieldDefinition, raw any) (bool, error) {
	ids, err := s.resolveTerms(ctx, field.Slug, stringEntries(raw), true)
	if err != nil {
		return false, err
	}
	if err := s.termRepo.ReplaceAssignments(ctx, productID, field.Slug, ids); err != nil {
		return false, err
	}
	return true, nil
}

// resolveTerms maps sanitized entries to term IDs within a field's
// vocabulary. Entries resolve by term ID first, then by slug or name.
// When create is set, unresolved entries become new terms, and an
// entry the vocabulary store rejects is omitted from the replacement
// set; the accepted entries still go through.
func (s *valueSaverImpl) resolveTerms(ctx context.Context, fieldSlug string, entries []string, create bool) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]bool, len(entries))

	for _, entry := range entries {
		term, err := s.lookupTerm(ctx, fieldSlug, entry)
		if err == nil && term == nil && create {
			term, err = s.termRepo.FirstOrCreate(ctx, fieldSlug, entry)
		}
		if err != nil {
			if !create {
				return nil, err
			}
			s.logger.Warn("vocabulary rejected entry, omitting from assignment",
				zap.String("field_slug", fieldSlug),
				zap.String("entry", entry),
				zap.Error(err),
			)
			continue
		}
		if term == nil || seen[term.ID] {
			continue
		}
		seen[term.ID] = true
		ids = append(ids, term.ID)
	}
	return ids, nil
}

// lookupTerm resolves one entry to an existing term, or nil.
func (s *valueSaverImpl) lookupTerm(ctx context.Context, fieldSlug, entry string) (*domain.SpecTerm, error) {
	if id, err := uuid.Parse(entry); err == nil {
		term, err := s.termRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		// An ID belonging to another field's vocabulary never
		// resolves; vocabularies are strictly namespaced.
		if term != nil && term.FieldSlug == fieldSlug {
			return term, nil
		}
		return nil, nil
	}
	return s.termRepo.FindBySlugOrName(ctx, fieldSlug, entry)
}

func (s *valueSaverImpl) record(fieldType, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordSpecSave(fieldType, outcome)
	}
}

// parseMinMax extracts a range from the accepted input shapes: a
// MinMax value, a pointer to one, or a {"min","max"} document.
func parseMinMax(raw any) value.MinMax {
	switch t := raw.(type) {
	case value.MinMax:
		return t
	case *value.MinMax:
		if t != nil {
			return *t
		}
	case map[string]any:
		var m value.MinMax
		if f, ok := value.ParseFloat(t["min"]); ok {
			m.Min = &f
		}
		if f, ok := value.ParseFloat(t["max"]); ok {
			m.Max = &f
		}
		return m
	}
	return value.MinMax{}
}

// stringEntries sanitizes scalar-or-array input into trimmed,
// non-empty string entries.
func stringEntries(raw any) []string {
	var candidates []string
	switch t := raw.(type) {
	case string:
		candidates = []string{t}
	case []string:
		candidates = t
	case uuid.UUID:
		candidates = []string{t.String()}
	case []uuid.UUID:
		for _, id := range t {
			candidates = append(candidates, id.String())
		}
	case []any:
		for _, v := range t {
			candidates = append(candidates, fmt.Sprint(v))
		}
	default:
		candidates = []string{fmt.Sprint(raw)}
	}

	entries := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}
