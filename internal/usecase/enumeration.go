package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/internal/service"
)

type EnumerationUseCase interface {
	Enumerate(ctx context.Context) (*entity.Summary, error)
}

type enumeratorDep interface {
	Run(ctx context.Context, visit service.VisitFunc) (entity.Summary, error)
}

type reporterDep interface {
	Report(ctx context.Context, record entity.GameRecord) error
	Summary(summary entity.Summary) error
}

type recordRepoDep interface {
	Save(ctx context.Context, runID string, record entity.GameRecord) error
}

type enumerationUseCase struct {
	logger *slog.Logger

	enumerator enumeratorDep
	reporter   reporterDep
	recordRepo recordRepoDep

	quiet bool
}

// NewEnumerationUseCase - recordRepo may be nil when records are not stored.
// A quiet run only reports the summary.
func NewEnumerationUseCase(logger *slog.Logger, enumerator enumeratorDep, reporter reporterDep, recordRepo recordRepoDep, quiet bool) EnumerationUseCase {
	return &enumerationUseCase{
		logger:     logger.With("component", "enumeration"),
		enumerator: enumerator,
		reporter:   reporter,
		recordRepo: recordRepo,
		quiet:      quiet,
	}
}

func (that *enumerationUseCase) Enumerate(ctx context.Context) (*entity.Summary, error) {
	runID := uuid.NewString()
	log := that.logger.With("run_id", runID)

	log.Info("Playing all games")

	summary, err := that.enumerator.Run(ctx, func(ctx context.Context, record entity.GameRecord) error {
		if !that.quiet {
			if err := that.reporter.Report(ctx, record); err != nil {
				return fmt.Errorf("failed to report game: %w", err)
			}
		}

		if that.recordRepo != nil {
			if err := that.recordRepo.Save(ctx, runID, record); err != nil {
				return fmt.Errorf("failed to save game: %w", err)
			}
		}

		return nil
	})

	summary.RunID = runID

	if err != nil {
		log.Error("Enumeration stopped", "error", err, "games", summary.Total)
		return &summary, fmt.Errorf("failed to enumerate games: %w", err)
	}

	if err = that.reporter.Summary(summary); err != nil {
		return &summary, fmt.Errorf("failed to report summary: %w", err)
	}

	log.Info("All games played",
		"games", summary.Total,
		"x_wins", summary.XWins,
		"o_wins", summary.OWins,
		"draws", summary.Draws,
	)

	return &summary, nil
}
