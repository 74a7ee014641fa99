package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/config"
	"github.com/rocketscienceinc/tabletop/internal/entity"
	"github.com/rocketscienceinc/tabletop/internal/random"
	"github.com/rocketscienceinc/tabletop/internal/repository"
	"github.com/rocketscienceinc/tabletop/internal/repository/storage"
	"github.com/rocketscienceinc/tabletop/internal/service"
	"github.com/rocketscienceinc/tabletop/internal/transport/console"
	"github.com/rocketscienceinc/tabletop/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - plays the configured game on in and out until the human stops or input ends.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	kind, err := entity.ParseGameKind(conf.Game)
	if err != nil {
		return err
	}

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

	resultRepo, closeStore, err := newResultRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStore()

	rng, seed, err := random.New(conf.Seed)
	if err != nil {
		return fmt.Errorf("could not seed random source: %w", err)
	}

	log.Info("Starting game", "game", string(kind), "seed", seed, "storage", conf.Storage)

	prompt := console.New(logger, in, out)
	human := service.NewHumanPlayer(entity.MarkerX, prompt)
	computer := service.NewComputerPlayer(entity.MarkerO, rng)

	gameManager := usecase.NewGameManager(logger, resultRepo, prompt, human, computer, rng, usecase.Bankroll{
		Starting: conf.TwentyOne.StartingBankroll,
		RichAt:   conf.TwentyOne.RichAt,
	})

	err = gameManager.Run(ctx, kind)
	switch {
	case errors.Is(err, context.Canceled):
		log.Info("Game interrupted")
		return nil
	case errors.Is(err, apperror.ErrInputClosed):
		log.Info("Input closed, leaving the table")
		return nil
	case err != nil:
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func newResultRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ResultRepository, func(), error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryResultRepository(), func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStore := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewResultRepository(redisStorage.Connection), closeStore, nil
}
