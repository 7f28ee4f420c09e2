// Package vasscm holds the hand-off point towards the customs VASSCM system.
// No network integration exists; Stub only records that a submission was requested.
package vasscm

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
)

// Receipt acknowledges a submission.
type Receipt struct {
	ID          uuid.UUID
	Count       int
	SubmittedAt time.Time
}

type Submitter interface {
	Submit(ctx context.Context, records []*goods.Record) (Receipt, error)
}

// Stub accepts every submission without contacting any external system.
type Stub struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewStub(logger *slog.Logger) *Stub {
	if logger == nil {
		logger = slog.Default()
	}

	return &Stub{logger: logger, now: time.Now}
}

func (s *Stub) Submit(ctx context.Context, records []*goods.Record) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{
		ID:          uuid.New(),
		Count:       len(records),
		SubmittedAt: s.now(),
	}

	s.logger.InfoContext(ctx, "vasscm submission recorded (stub)",
		"receipt_id", receipt.ID,
		"count", receipt.Count,
	)

	return receipt, nil
}
