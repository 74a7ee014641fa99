package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
)

var ErrResultNotFound = apperror.ErrResultNotFound

const (
	fieldWins   = "wins"
	fieldLosses = "losses"
	fieldDraws  = "draws"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	Tally(ctx context.Context, kind entity.GameKind) (entity.Tally, error)
}

type dbResult struct {
	client *redis.Client
}

// NewResultRepository keeps each result as JSON under result:<id> and a tally:<kind> hash of counters.
func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	field, err := tallyField(result.Outcome)
	if err != nil {
		return err
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey(result.ID), resultJSON, 0)
		pipe.HIncrBy(ctx, tallyKey(result.Kind), field, 1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var existingResult entity.Result
	if err = json.Unmarshal([]byte(response), &existingResult); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &existingResult, nil
}

func (that *dbResult) Tally(ctx context.Context, kind entity.GameKind) (entity.Tally, error) {
	counters, err := that.client.HGetAll(ctx, tallyKey(kind)).Result()
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get tally: %w", err)
	}

	var tally entity.Tally
	for field, target := range map[string]*int{fieldWins: &tally.Wins, fieldLosses: &tally.Losses, fieldDraws: &tally.Draws} {
		value, ok := counters[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(value); err != nil {
			return entity.Tally{}, fmt.Errorf("failed to parse %s counter: %w", field, err)
		}
	}

	return tally, nil
}

func tallyField(outcome entity.Outcome) (string, error) {
	switch {
	case outcome.IsWin():
		return fieldWins, nil
	case outcome.IsLoss():
		return fieldLosses, nil
	case outcome.IsTie():
		return fieldDraws, nil
	default:
		return "", fmt.Errorf("unknown outcome %q", outcome)
	}
}

func resultKey(id string) string {
	return "result:" + id
}

func tallyKey(kind entity.GameKind) string {
	return "tally:" + string(kind)
}
