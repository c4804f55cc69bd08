//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlackoutCreate(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, phoenix)

	t.Run("records a window", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewBlackoutCommands(&fakeUoW{store: store})

		reason := "van maintenance"
		view, err := cmds.Create(context.Background(), commands.CreateBlackoutParams{
			Date:      day,
			StartTime: "14:00",
			EndTime:   "15:30",
			Reason:    &reason,
			CreatedBy: "pat@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, "2026-03-14", view.BlockDate)
		assert.Equal(t, "14:00:00", view.StartTime)
		assert.Equal(t, "15:30:00", view.EndTime)
		assert.Equal(t, "pat@example.com", view.CreatedBy)

		require.Len(t, store.blackouts, 1)
	})

	t.Run("creator defaults to admin", func(t *testing.T) {
		store := newFakeStore()
		cmds := commands.NewBlackoutCommands(&fakeUoW{store: store})

		view, err := cmds.Create(context.Background(), commands.CreateBlackoutParams{
			Date:      day,
			StartTime: "14:00",
			EndTime:   "15:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", view.CreatedBy)
	})

	t.Run("end must be after start", func(t *testing.T) {
		cmds := commands.NewBlackoutCommands(&fakeUoW{store: newFakeStore()})

		_, err := cmds.Create(context.Background(), commands.CreateBlackoutParams{
			Date:      day,
			StartTime: "15:00",
			EndTime:   "14:00",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidBlackoutWindow)

		_, err = cmds.Create(context.Background(), commands.CreateBlackoutParams{
			Date:      day,
			StartTime: "14:00",
			EndTime:   "14:00",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidBlackoutWindow)
	})

	t.Run("unparseable times", func(t *testing.T) {
		cmds := commands.NewBlackoutCommands(&fakeUoW{store: newFakeStore()})

		_, err := cmds.Create(context.Background(), commands.CreateBlackoutParams{
			Date:      day,
			StartTime: "two pm",
			EndTime:   "15:00",
		})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestBlackoutDelete(t *testing.T) {
	store := newFakeStore()
	cmds := commands.NewBlackoutCommands(&fakeUoW{store: store})

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, phoenix)
	view, err := cmds.Create(context.Background(), commands.CreateBlackoutParams{
		Date:      day,
		StartTime: "14:00",
		EndTime:   "15:00",
	})
	require.NoError(t, err)

	require.NoError(t, cmds.Delete(context.Background(), view.ID))
	assert.Empty(t, store.blackouts)

	err = cmds.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.ErrBlackoutNotFound)
}
