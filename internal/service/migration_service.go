package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"product-spec-api/internal/client"
	"product-spec-api/internal/dto"
	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/metrics"
	"product-spec-api/internal/migration"
	"product-spec-api/internal/repository"
	"product-spec-api/internal/response"
	"product-spec-api/internal/units"
	"product-spec-api/internal/value"
)

// Migration row outcomes.
const (
	MigrationStatusMigrated        = "migrated"
	MigrationStatusDryRun          = "dry-run"
	MigrationStatusSkippedExisting = "skipped-existing"
	MigrationStatusSkippedNoData   = "skipped-no-data"
	MigrationStatusExternal        = "handled-external"
)

// MigrationService runs the one-time import of legacy free-text
// metadata into typed specification values.
type MigrationService interface {
	Run(ctx context.Context, req *dto.RunMigrationRequest) (*dto.RunMigrationResponse, error)
}

// migrationServiceImpl is the implementation of MigrationService
type migrationServiceImpl struct {
	registry   *fieldtype.Registry
	units      *units.Registry
	fieldRepo  repository.FieldDefinitionRepository
	legacyRepo repository.LegacyMetaRepository
	resolver   ValueResolver
	saver      ValueSaver
	exporter   client.ReportExporter
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewMigrationService creates a new instance of MigrationService.
// exporter and m may be nil; without an exporter, export requests are
// ignored.
func NewMigrationService(
	registry *fieldtype.Registry,
	unitRegistry *units.Registry,
	fieldRepo repository.FieldDefinitionRepository,
	legacyRepo repository.LegacyMetaRepository,
	resolver ValueResolver,
	saver ValueSaver,
	exporter client.ReportExporter,
	m *metrics.Metrics,
	logger *zap.Logger,
) MigrationService {
	return &migrationServiceImpl{
		registry:   registry,
		units:      unitRegistry,
		fieldRepo:  fieldRepo,
		legacyRepo: legacyRepo,
		resolver:   resolver,
		saver:      saver,
		exporter:   exporter,
		metrics:    m,
		logger:     logger,
	}
}

// Run walks every mapped legacy row, normalizes its text and saves the
// result through the regular dispatch. Products that already carry a
// value for the target field are never overwritten.
func (s *migrationServiceImpl) Run(ctx context.Context, req *dto.RunMigrationRequest) (*dto.RunMigrationResponse, error) {
	pos := migration.TokenPosition(req.ValueIndex)
	if pos == "" {
		pos = migration.TokenFirst
	}

	result := &dto.RunMigrationResponse{
		DryRun: req.DryRun,
		Counts: make(map[string]int),
	}

	for _, mapping := range req.Mappings {
		rows, err := s.legacyRepo.FindByKey(ctx, mapping.LegacyKey)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to read legacy rows", err.Error())
		}

		field, err := s.fieldRepo.FindBySlug(ctx, mapping.FieldSlug)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field", err.Error())
		}
		numeric := field != nil && s.registry.IsNumeric(field.Type)

		for _, row := range rows {
			rowResult := dto.MigrationRowResult{
				ProductID: row.ProductID,
				LegacyKey: mapping.LegacyKey,
				FieldSlug: mapping.FieldSlug,
				RawText:   row.MetaValue,
			}

			rowResult.Status, rowResult.Value, rowResult.Unit, err = s.migrateRow(
				ctx, row.ProductID, mapping.FieldSlug, row.MetaValue,
				field != nil, numeric, pos, req.UnitAliases, req.DryRun,
			)
			if err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Migration row failed", err.Error())
			}

			result.Counts[rowResult.Status]++
			result.Rows = append(result.Rows, rowResult)
			if s.metrics != nil {
				s.metrics.RecordMigrationRow(rowResult.Status)
			}
		}
	}

	if req.Export && !req.DryRun && s.exporter != nil {
		url, err := s.exporter.ExportReport(ctx, result)
		if err != nil {
			// The migration itself succeeded; a failed export is
			// logged, not fatal.
			s.logger.Warn("failed to export migration report", zap.Error(err))
		} else {
			result.ReportURL = url
		}
	}
	return result, nil
}

// migrateRow handles one (product, legacy key) row and returns its
// status, the normalized value and any detected unit.
func (s *migrationServiceImpl) migrateRow(
	ctx context.Context,
	pid uuid.UUID,
	fieldSlug, text string,
	known, numeric bool,
	pos migration.TokenPosition,
	aliases map[string]string,
	dryRun bool,
) (string, any, string, error) {
	if !known {
		// Unknown target slugs still go through the dispatcher so an
		// external save extension can claim them.
		if dryRun {
			return MigrationStatusDryRun, text, "", nil
		}
		saved, err := s.saver.Save(ctx, pid, fieldSlug, text)
		if err != nil {
			return "", nil, "", err
		}
		if saved {
			return MigrationStatusExternal, text, "", nil
		}
		return MigrationStatusSkippedNoData, nil, "", nil
	}

	existing, err := s.resolver.Resolve(ctx, pid, fieldSlug)
	if err != nil {
		return "", nil, "", err
	}
	if !value.IsEmpty(existing) {
		return MigrationStatusSkippedExisting, nil, "", nil
	}

	var normalized any
	var unit string
	if numeric {
		num, ok := migration.ExtractNumber(text, pos)
		if !ok {
			return MigrationStatusSkippedNoData, nil, "", nil
		}
		normalized = num
		if code, ok := migration.MatchUnit(text, aliases, s.units); ok {
			unit = code
		}
	} else {
		normalized = text
		if value.IsEmpty(normalized) {
			return MigrationStatusSkippedNoData, nil, "", nil
		}
	}

	if dryRun {
		return MigrationStatusDryRun, normalized, unit, nil
	}

	saved, err := s.saver.Save(ctx, pid, fieldSlug, normalized)
	if err != nil {
		return "", nil, "", err
	}
	if !saved {
		return MigrationStatusSkippedNoData, normalized, unit, nil
	}
	return MigrationStatusMigrated, normalized, unit, nil
}
