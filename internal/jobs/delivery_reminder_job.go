package jobs

import (
	"context"
	"log/slog"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reminderSchedule fires at the top of every hour.
const reminderSchedule = "0 0 * * * *"

// DeliveryReminderJob periodically texts customers whose orders are out for
// delivery.
type DeliveryReminderJob struct {
	handler commands.SendDeliveryRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryReminderJob creates the hourly reminder job.
// Uses SendDeliveryRemindersCommandHandler to sweep out-for-delivery orders.
func NewDeliveryReminderJob(handler commands.SendDeliveryRemindersCommandHandler, logger *slog.Logger) *DeliveryReminderJob {
	return &DeliveryReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_reminder_job"),
	}
}

// Start begins the reminder job on its hourly schedule.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc(reminderSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewSendDeliveryRemindersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}
