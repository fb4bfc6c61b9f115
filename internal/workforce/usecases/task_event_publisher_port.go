package usecases

import (
	"context"
	"workforce-server/internal/workforce/domain"
)

// TaskEventPublisher fans task lifecycle events out to interested audiences.
// Delivery is best effort; publishing never blocks the calling operation.
type TaskEventPublisher interface {
	Publish(ctx context.Context, event domain.TaskEvent) error
}
