package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/EsHomes/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingHousekeeper interface {
	CancelExpired(ctx context.Context) ([]*domain.Booking, error)
	CompleteFinished(ctx context.Context) (int64, error)
}

// Scheduler periodically releases unpaid holds and closes finished stays.
// One pass runs immediately on Start so holds that expired while the
// service was down are released without waiting a full interval.
type Scheduler struct {
	housekeeper bookingHousekeeper
	interval    time.Duration
	logger      logger.Logger
}

func New(
	housekeeper bookingHousekeeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		housekeeper: housekeeper,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.runPass(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

// runPass is bounded by the interval so a stuck query cannot pile up passes.
func (s *Scheduler) runPass(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	passCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	started := time.Now()

	expired, err := s.housekeeper.CancelExpired(passCtx)
	if err != nil {
		s.logger.Error("failed to release expired holds",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range expired {
		s.logger.Info("booking hold expired",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("apartment_id", b.ApartmentID),
		)
	}

	completed, err := s.housekeeper.CompleteFinished(passCtx)
	if err != nil {
		s.logger.Error("failed to complete finished stays",
			logger.String("error", err.Error()),
		)
	}

	s.logger.Debug("housekeeping pass done",
		logger.Int("expired", len(expired)),
		logger.Int64("completed", completed),
		logger.Duration("took", time.Since(started)),
	)
}
