package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
)

var ErrRunNotFound = errors.New("enumeration run not found")

// RecordRepository stores the games found by an enumeration run.
type RecordRepository interface {
	Save(ctx context.Context, runID string, record entity.GameRecord) error
	List(ctx context.Context, runID string, start, stop int64) ([]entity.GameRecord, error)
	Tally(ctx context.Context, runID string) (*entity.Summary, error)
	DeleteRun(ctx context.Context, runID string) error
}

type dbRecord struct {
	client *redis.Client
}

func NewRecordRepository(client *redis.Client) RecordRepository {
	return &dbRecord{
		client: client,
	}
}

func gamesKey(runID string) string {
	return "enumeration:" + runID + ":games"
}

func outcomesKey(runID string) string {
	return "enumeration:" + runID + ":outcomes"
}

// Save - appends the record to the run's game list and bumps the outcome counter.
func (that *dbRecord) Save(ctx context.Context, runID string, record entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	pipe := that.client.TxPipeline()
	pipe.RPush(ctx, gamesKey(runID), recordJSON)
	pipe.HIncrBy(ctx, outcomesKey(runID), string(record.Outcome), 1)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// List - records from start to stop inclusive, negative indexes count from the end.
func (that *dbRecord) List(ctx context.Context, runID string, start, stop int64) ([]entity.GameRecord, error) {
	response, err := that.client.LRange(ctx, gamesKey(runID), start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]entity.GameRecord, 0, len(response))
	for _, item := range response {
		var record entity.GameRecord
		if err = json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}

// Tally - the outcome counters of a run.
func (that *dbRecord) Tally(ctx context.Context, runID string) (*entity.Summary, error) {
	response, err := that.client.HGetAll(ctx, outcomesKey(runID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	if len(response) == 0 {
		return nil, ErrRunNotFound
	}

	summary := &entity.Summary{RunID: runID}
	for outcome, value := range response {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s tally: %w", outcome, err)
		}

		switch entity.GameStatus(outcome).Winner() {
		case entity.PlayerX:
			summary.XWins += count
		case entity.PlayerO:
			summary.OWins += count
		default:
			summary.Draws += count
		}

		summary.Total += count
	}

	return summary, nil
}

func (that *dbRecord) DeleteRun(ctx context.Context, runID string) error {
	deleted, err := that.client.Del(ctx, gamesKey(runID), outcomesKey(runID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	if deleted == 0 {
		return ErrRunNotFound
	}

	return nil
}
