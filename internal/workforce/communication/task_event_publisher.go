package communication

import (
	"context"
	"errors"
	"fmt"
	"workforce-server/internal/infra/async"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/usecases"
)

func NewTaskEventPublisher(broker async.InternalBroker) *TaskEventPublisher {
	return &TaskEventPublisher{
		broker: broker,
	}
}

var _ usecases.TaskEventPublisher = (*TaskEventPublisher)(nil)

// TaskEventPublisher pushes task lifecycle events onto the internal broker,
// where the websocket hub and the email worker pick them up.
type TaskEventPublisher struct {
	broker async.InternalBroker
}

func (p *TaskEventPublisher) Publish(ctx context.Context, event domain.TaskEvent) error {
	err := p.broker.Publish(ctx, usecases.TaskEventsTopic, async.BrokerMessage{
		Event: string(event.Kind),
		Value: event,
	})
	if err != nil {
		// no subscribers yet is not a failure
		if errors.Is(err, async.ErrTopicNotFound) {
			return nil
		}
		return fmt.Errorf("publishing task event: %w", err)
	}

	return nil
}
