package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"workforce-server/internal/infra/async"
	"workforce-server/internal/infra/notification"
	"workforce-server/internal/workforce/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// TaskEventsTopic is the internal broker topic carrying task lifecycle events.
const TaskEventsTopic = async.BrokerTopicName("task-events")

const _metricKeyEmails = "emails"

// EmailNotificationWorker mails the department inbox whenever an employee
// files a new task log.
func NewEmailNotificationWorker(
	notificationClient notification.NotificationClient,
	departmentRepository DepartmentRepository,
	broker async.InternalBroker,
) *EmailNotificationWorker {
	return &EmailNotificationWorker{
		notificationClient:   notificationClient,
		departmentRepository: departmentRepository,
		broker:               broker,
		metricCounters:       make(map[string]metric.Float64Counter),
	}
}

var _ async.Worker = &EmailNotificationWorker{}

type EmailNotificationWorker struct {
	notificationClient   notification.NotificationClient
	departmentRepository DepartmentRepository
	broker               async.InternalBroker
	metricCounters       map[string]metric.Float64Counter
}

func (w *EmailNotificationWorker) Run(ctx context.Context, done func()) {
	slog.Debug("email notification worker started")
	defer done()

	subscription, err := w.broker.Subscribe(TaskEventsTopic)
	if err != nil {
		slog.Error("subscribing to task events topic", slog.Any("error", err))
		return
	}

	if err := w.initializeMetrics(); err != nil {
		slog.Error("initializing metrics", slog.Any("error", err))
		return
	}

	w.processMessages(ctx, subscription)
}

func (w *EmailNotificationWorker) Shutdown() {
	slog.Debug("email notification worker shutdown")
}

func (w *EmailNotificationWorker) processMessages(ctx context.Context, subscription async.Subscription) {
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			slog.Debug("email notification worker context done, draining in-flight messages")
			wg.Wait()
			return
		case msg := <-subscription.Receiver:
			wg.Add(1)
			go w.processTaskEvent(ctx, msg, wg.Done)
		}
	}
}

func (w *EmailNotificationWorker) processTaskEvent(ctx context.Context, message async.BrokerMessage, done func()) {
	ctx, span := otel.Tracer("email-notification-worker").Start(ctx, "process-task-event")
	defer span.End()
	defer done()

	event, ok := message.Value.(domain.TaskEvent)
	if !ok {
		slog.Warn("invalid task event format", slog.Any("value", message.Value))
		span.RecordError(fmt.Errorf("invalid task event format"))
		return
	}

	// only fresh submissions go to the department inbox
	if event.Kind != domain.EventKindNewTask {
		return
	}

	span.SetAttributes(
		attribute.String("task_log.id", event.TaskLogID.String()),
		attribute.String("department.id", event.DepartmentID.String()),
	)

	department, err := w.departmentRepository.GetByID(ctx, event.DepartmentID)
	if err != nil {
		slog.Warn("failed to get department for notification",
			slog.String("department_id", event.DepartmentID.String()),
			slog.Any("error", err))
		span.RecordError(fmt.Errorf("failed to get department: %w", err))
		return
	}

	if department.NotificationEmail == "" {
		slog.Warn("department has no notification email configured, skipping",
			slog.String("department_id", event.DepartmentID.String()))
		span.SetAttributes(attribute.Bool("notification.skipped", true))
		return
	}

	if err := w.sendTaskEmail(ctx, event, department.NotificationEmail); err != nil {
		slog.Error("failed to send task notification email",
			slog.String("task_log_id", event.TaskLogID.String()),
			slog.String("notification_email", department.NotificationEmail),
			slog.Any("error", err))
		span.RecordError(err)
		w.recordEmailMetrics(ctx, "failure")
		return
	}

	w.recordEmailMetrics(ctx, "success")
	span.SetAttributes(attribute.Bool("notification.sent", true))

	slog.Info("task notification email sent successfully",
		slog.String("task_log_id", event.TaskLogID.String()),
		slog.String("notification_email", department.NotificationEmail))
}

func (w *EmailNotificationWorker) sendTaskEmail(ctx context.Context, event domain.TaskEvent, notificationEmail string) error {
	subject := fmt.Sprintf("New Task Log: %s", event.DutyTitle)
	body := "A new task log has been submitted.\n\n"
	body += "- Duty: " + event.DutyTitle + "\n"
	body += "- Employee: " + event.EmployeeName + "\n"
	body += "- Status: " + string(event.Status) + "\n"
	body += "- Submitted At: " + event.OccurredAt.Format("2006-01-02 15:04:05 MST") + "\n"
	body += "\nThis is an automated notification from Workforce Server.\n"

	return w.notificationClient.SendEmail(ctx, notification.EmailRequest{
		To:      notificationEmail,
		Subject: subject,
		Body:    body,
	})
}

func (w *EmailNotificationWorker) initializeMetrics() error {
	meter := otel.Meter("email-notification-worker")

	emailCounter, err := meter.Float64Counter(
		"workforce_server_notification_emails_total",
		metric.WithDescription("Total number of notification emails sent"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating email counter: %w", err)
	}

	w.metricCounters[_metricKeyEmails] = emailCounter
	return nil
}

func (w *EmailNotificationWorker) recordEmailMetrics(ctx context.Context, status string) {
	if counter, exists := w.metricCounters[_metricKeyEmails]; exists {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("status", status),
		))
	}
}
