package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mini-uttt/internal/config"
	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/internal/repository"
	"github.com/rocketscienceinc/mini-uttt/internal/repository/storage"
	"github.com/rocketscienceinc/mini-uttt/internal/service"
	"github.com/rocketscienceinc/mini-uttt/internal/tictactoe"
	"github.com/rocketscienceinc/mini-uttt/internal/transport/console"
	"github.com/rocketscienceinc/mini-uttt/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	switch conf.Mode {
	case config.ModePlay:
		return runPlay(ctx, logger, conf)
	case config.ModeEnumerate:
		return runEnumeration(ctx, logger, conf)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownMode, conf.Mode)
	}
}

func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	game := tictactoe.New()
	gamePlay := service.NewGamePlayService(logger, game)
	terminal := console.New(os.Stdin, os.Stdout, !conf.Play.NoColor)

	playUseCase := usecase.NewPlayUseCase(logger, gamePlay, terminal)

	if _, err := playUseCase.Play(ctx, conf.Play.AutoMoves); err != nil {
		if errors.Is(err, usecase.ErrGameAbandoned) || errors.Is(err, console.ErrInputClosed) {
			return nil
		}
		return fmt.Errorf("failed to play game: %w", err)
	}

	return nil
}

func runEnumeration(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	var options []tictactoe.Option
	if len(conf.Enumeration.ClosedBoards) > 0 {
		closed := make([]entity.BoardID, 0, len(conf.Enumeration.ClosedBoards))
		for _, board := range conf.Enumeration.ClosedBoards {
			closed = append(closed, entity.BoardID(board))
		}
		options = append(options, tictactoe.WithClosedBoards(closed...))
	}

	enumerator := service.NewEnumeratorService(logger, entity.BoardID(conf.Enumeration.OpeningBoard), options...)
	reporter := console.NewReporter(os.Stdout, conf.Enumeration.Pace)

	var records repository.RecordRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		records = repository.NewRecordRepository(redisStorage.Connection)
	}

	enumerationUseCase := usecase.NewEnumerationUseCase(logger, enumerator, reporter, records, conf.Enumeration.Quiet)

	summary, err := enumerationUseCase.Enumerate(ctx)
	if err != nil {
		return err
	}

	if records != nil {
		stored, err := records.Tally(ctx, summary.RunID)
		if err != nil {
			return fmt.Errorf("could not read stored run: %w", err)
		}

		log.Info("Run stored", "run_id", stored.RunID, "games", stored.Total)
	}

	return nil
}
