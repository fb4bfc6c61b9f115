package usecases

import (
	"context"
	"log/slog"
	"time"
	"workforce-server/internal/infra/async"

	"github.com/robfig/cron/v3"
)

const _leaveReversionSchedule = "*/5 * * * *"

// LeaveReversionWorker periodically scans users whose scheduled leave has
// lapsed and flips them back to active. Scanning the database on every tick
// keeps the reversion correct across restarts.
func NewLeaveReversionWorker(userRepository UserRepository) *LeaveReversionWorker {
	return &LeaveReversionWorker{
		userRepository: userRepository,
		scheduler:      cron.New(),
	}
}

var _ async.Worker = &LeaveReversionWorker{}

type LeaveReversionWorker struct {
	userRepository UserRepository
	scheduler      *cron.Cron
}

func (w *LeaveReversionWorker) Run(ctx context.Context, done func()) {
	slog.Debug("leave reversion worker started")
	defer done()

	_, err := w.scheduler.AddFunc(_leaveReversionSchedule, func() {
		w.revertExpiredLeaves(context.Background())
	})
	if err != nil {
		slog.Error("scheduling leave reversion", slog.Any("error", err))
		return
	}

	w.scheduler.Start()

	// catch leaves that expired while the server was down
	w.revertExpiredLeaves(ctx)

	<-ctx.Done()
	slog.Info("leave reversion worker cancelled")
	<-w.scheduler.Stop().Done()
}

func (w *LeaveReversionWorker) Shutdown() {
	slog.Debug("leave reversion worker shutdown")
	w.scheduler.Stop()
}

func (w *LeaveReversionWorker) revertExpiredLeaves(ctx context.Context) {
	users, err := w.userRepository.FindAllOnLeave(ctx)
	if err != nil {
		slog.Error("finding users on leave", slog.Any("error", err))
		return
	}

	now := time.Now()
	for _, user := range users {
		if !user.LeaveExpired(now) {
			continue
		}

		user.EndLeave()

		if err := w.userRepository.Update(ctx, user); err != nil {
			slog.Error("reverting leave",
				slog.String("user_id", user.ID.String()),
				slog.Any("error", err))
			continue
		}

		slog.Info("leave reverted", slog.String("user_id", user.ID.String()))
	}
}
