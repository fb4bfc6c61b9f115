package usecases_test

import (
	"context"
	"sync"
	"testing"
	"time"
	"workforce-server/internal/infra/async"
	"workforce-server/internal/infra/notification"
	"workforce-server/internal/infra/utils"
	"workforce-server/internal/workforce/domain"
	"workforce-server/internal/workforce/usecases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationClient struct {
	mu       sync.Mutex
	requests []notification.EmailRequest
}

func (c *fakeNotificationClient) SendEmail(_ context.Context, request notification.EmailRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, request)
	return nil
}

func (c *fakeNotificationClient) sent() []notification.EmailRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]notification.EmailRequest, len(c.requests))
	copy(result, c.requests)
	return result
}

func TestEmailNotificationWorkerMailsDepartmentInbox(t *testing.T) {
	broker := async.NewLocalBroker()
	defer broker.Stop()

	departmentRepository := newFakeDepartmentRepository()
	require.NoError(t, departmentRepository.Create(context.Background(), domain.Department{
		ID:                "department-1",
		Name:              "Operations",
		NotificationEmail: "ops@workforcehub.app",
	}))

	client := &fakeNotificationClient{}
	worker := usecases.NewEmailNotificationWorker(client, departmentRepository, broker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go worker.Run(ctx, wg.Done)

	// give the worker time to subscribe before publishing
	time.Sleep(50 * time.Millisecond)

	newTask := domain.TaskEvent{
		Kind:         domain.EventKindNewTask,
		TaskLogID:    "log-1",
		DutyID:       "duty-1",
		DutyTitle:    "Daily Report",
		EmployeeID:   "employee-1",
		DepartmentID: "department-1",
		Status:       domain.TaskStatusPending,
		OccurredAt:   utils.Time{Time: time.Now()},
	}
	require.NoError(t, broker.Publish(ctx, usecases.TaskEventsTopic, async.BrokerMessage{
		Event: string(newTask.Kind),
		Value: newTask,
	}))

	reviewed := newTask
	reviewed.Kind = domain.EventKindTaskReviewed
	require.NoError(t, broker.Publish(ctx, usecases.TaskEventsTopic, async.BrokerMessage{
		Event: string(reviewed.Kind),
		Value: reviewed,
	}))

	require.Eventually(t, func() bool {
		return len(client.sent()) == 1
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	wg.Wait()

	requests := client.sent()
	require.Len(t, requests, 1, "review events must not hit the inbox")
	assert.Equal(t, "ops@workforcehub.app", requests[0].To)
	assert.Contains(t, requests[0].Subject, "Daily Report")
}
