package vasscm_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/vasscm"
)

func TestStub_Submit(t *testing.T) {
	var logs bytes.Buffer
	stub := vasscm.NewStub(slog.New(slog.NewTextHandler(&logs, nil)))

	receipt, err := stub.Submit(context.Background(), goods.Seed())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, receipt.ID)
	assert.Equal(t, 4, receipt.Count)
	assert.False(t, receipt.SubmittedAt.IsZero())
	assert.Contains(t, logs.String(), "count=4")
}

func TestStub_Submit_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := vasscm.NewStub(nil).Submit(ctx, goods.Seed())
	assert.ErrorIs(t, err, context.Canceled)
}
