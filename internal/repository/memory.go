package repository

import (
	"context"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

type memResult struct {
	results map[string]entity.Result
	tallies map[entity.GameKind]entity.Tally
}

// NewMemoryResultRepository keeps results for the life of the process.
func NewMemoryResultRepository() ResultRepository {
	return &memResult{
		results: make(map[string]entity.Result),
		tallies: make(map[entity.GameKind]entity.Tally),
	}
}

func (that *memResult) Save(_ context.Context, result *entity.Result) error {
	if _, err := tallyField(result.Outcome); err != nil {
		return err
	}

	that.results[result.ID] = *result

	tally := that.tallies[result.Kind]
	tally.Add(result.Outcome)
	that.tallies[result.Kind] = tally

	return nil
}

func (that *memResult) GetByID(_ context.Context, id string) (*entity.Result, error) {
	result, ok := that.results[id]
	if !ok {
		return nil, ErrResultNotFound
	}

	return &result, nil
}

func (that *memResult) Tally(_ context.Context, kind entity.GameKind) (entity.Tally, error) {
	return that.tallies[kind], nil
}
