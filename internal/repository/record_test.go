package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mini-uttt/internal/entity"
	"github.com/rocketscienceinc/mini-uttt/testing/suite"
)

func TestRecordRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	recordRepo := NewRecordRepository(st.Storage)

	// Given: a finished game
	record := entity.GameRecord{
		Moves:   entity.MustParseMoves("12", "21", "13", "31", "41", "24", "44"),
		Outcome: entity.GameWonBy(entity.PlayerX),
	}

	// When: Save is called
	err := recordRepo.Save(ctx, "run-1", record)

	// Then: no error should be returned, and the record is stored
	require.NoError(t, err)

	stored, err := recordRepo.List(ctx, "run-1", 0, -1)
	require.NoError(t, err)
	require.Equal(t, []entity.GameRecord{record}, stored)
}

func TestRecordRepository_List(t *testing.T) {
	t.Run("List_KeepsOrder", func(t *testing.T) {
		ctx, st := suite.New(t)

		recordRepo := NewRecordRepository(st.Storage)

		// Given: three records saved in order
		records := []entity.GameRecord{
			{Moves: entity.MustParseMoves("11", "12", "14"), Outcome: entity.GameDrawn},
			{Moves: entity.MustParseMoves("11", "12", "13", "14"), Outcome: entity.GameDrawn},
			{Moves: entity.MustParseMoves("11", "13", "14"), Outcome: entity.GameDrawn},
		}
		for _, record := range records {
			require.NoError(t, recordRepo.Save(ctx, "run-2", record))
		}

		// When: a range is listed
		stored, err := recordRepo.List(ctx, "run-2", 1, 2)

		// Then: the records come back in insertion order
		require.NoError(t, err)
		assert.Equal(t, records[1:], stored)
	})

	t.Run("List_UnknownRun", func(t *testing.T) {
		ctx, st := suite.New(t)

		recordRepo := NewRecordRepository(st.Storage)

		// When: List is called for a run that never saved anything
		stored, err := recordRepo.List(ctx, "missing", 0, -1)

		// Then: the list is empty
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}

func TestRecordRepository_Tally(t *testing.T) {
	t.Run("Tally_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		recordRepo := NewRecordRepository(st.Storage)

		// Given: records with every outcome
		outcomes := []entity.GameStatus{
			entity.GameWonBy(entity.PlayerX),
			entity.GameWonBy(entity.PlayerO),
			entity.GameDrawn,
			entity.GameDrawn,
		}
		for _, outcome := range outcomes {
			record := entity.GameRecord{Moves: entity.MustParseMoves("11"), Outcome: outcome}
			require.NoError(t, recordRepo.Save(ctx, "run-3", record))
		}

		// When: Tally is called
		summary, err := recordRepo.Tally(ctx, "run-3")

		// Then: the counters match
		require.NoError(t, err)
		assert.Equal(t, &entity.Summary{RunID: "run-3", Total: 4, XWins: 1, OWins: 1, Draws: 2}, summary)
	})

	t.Run("Tally_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		recordRepo := NewRecordRepository(st.Storage)

		// When: Tally is called for an unknown run
		summary, err := recordRepo.Tally(ctx, "missing")

		// Then: an ErrRunNotFound error should be returned
		require.ErrorIs(t, err, ErrRunNotFound)
		assert.Nil(t, summary)
	})
}

func TestRecordRepository_DeleteRun(t *testing.T) {
	t.Run("DeleteRun_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		recordRepo := NewRecordRepository(st.Storage)

		record := entity.GameRecord{Moves: entity.MustParseMoves("11"), Outcome: entity.GameDrawn}
		require.NoError(t, recordRepo.Save(ctx, "run-4", record))

		// When: DeleteRun is called
		err := recordRepo.DeleteRun(ctx, "run-4")

		// Then: the run is gone
		require.NoError(t, err)

		_, err = recordRepo.Tally(ctx, "run-4")
		require.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("DeleteRun_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		recordRepo := NewRecordRepository(st.Storage)

		// When: DeleteRun is called for an unknown run
		err := recordRepo.DeleteRun(ctx, "missing")

		// Then: an ErrRunNotFound error should be returned
		require.ErrorIs(t, err, ErrRunNotFound)
	})
}
