package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

func TestFlowRecorderAcquire(t *testing.T) {
	ctx := context.Background()
	tx := common.HexToHash("0x0c")

	t.Run("slot is exclusive from intent, not first submission", func(t *testing.T) {
		r := usecase.NewFlowRecorder()

		assert.True(t, r.TryAcquire())
		// No status transition has been recorded yet, but the slot is taken.
		assert.Equal(t, models.FlowIdle, r.Status().Phase)
		assert.False(t, r.TryAcquire())
	})

	t.Run("terminal status frees the slot", func(t *testing.T) {
		r := usecase.NewFlowRecorder()

		assert.True(t, r.TryAcquire())
		r.OnFlow(ctx, models.FlowStatusAwaitingConfirmation(tx))
		assert.False(t, r.TryAcquire())

		r.OnFlow(ctx, models.FlowStatusSucceeded(tx))
		assert.True(t, r.TryAcquire())
		// Acquiring cleared the stale terminal status.
		assert.Equal(t, models.FlowIdle, r.Status().Phase)
	})

	t.Run("release frees a slot that never submitted", func(t *testing.T) {
		r := usecase.NewFlowRecorder()

		assert.True(t, r.TryAcquire())
		r.Release()
		assert.True(t, r.TryAcquire())
	})

	t.Run("reset frees the slot after a failure", func(t *testing.T) {
		r := usecase.NewFlowRecorder()

		assert.True(t, r.TryAcquire())
		r.OnFlow(ctx, models.FlowStatusFailed(errors.New("reverted")))
		r.Reset()
		assert.True(t, r.TryAcquire())
	})

	t.Run("a recorded in-flight status blocks acquisition on its own", func(t *testing.T) {
		r := usecase.NewFlowRecorder()

		r.OnFlow(ctx, models.FlowStatusAwaitingApproval(tx))
		assert.False(t, r.TryAcquire())
	})
}
