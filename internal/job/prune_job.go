package job

import (
	"context"

	"go.uber.org/zap"

	"product-spec-api/internal/repository"
)

// PruneJob removes stored values whose field definition has been
// deleted. Deleting a definition leaves its values behind on purpose
// (the delete must stay cheap); this job sweeps them up periodically.
type PruneJob struct {
	fieldRepo repository.FieldDefinitionRepository
	valueRepo repository.SpecValueRepository
	logger    *zap.Logger
}

// NewPruneJob creates a new PruneJob instance
func NewPruneJob(
	fieldRepo repository.FieldDefinitionRepository,
	valueRepo repository.SpecValueRepository,
	logger *zap.Logger,
) *PruneJob {
	return &PruneJob{
		fieldRepo: fieldRepo,
		valueRepo: valueRepo,
		logger:    logger,
	}
}

// Run executes one sweep. Implements cron.Job.
func (j *PruneJob) Run() {
	ctx := context.Background()

	slugs, err := j.fieldRepo.AllSlugs(ctx)
	if err != nil {
		j.logger.Error("Failed to list field slugs for pruning",
			zap.Error(err),
		)
		return
	}

	pruned, err := j.valueRepo.DeleteOrphans(ctx, slugs)
	if err != nil {
		j.logger.Error("Failed to prune orphaned values",
			zap.Error(err),
		)
		return
	}

	if pruned > 0 {
		j.logger.Info("Pruned orphaned specification values",
			zap.Int64("count", pruned),
			zap.Int("known_fields", len(slugs)),
		)
	}
}
