package scheduler

import (
	"context"
	"fmt"
	"log"

	"centavo/internal/domain/reminder"
)

// ReminderJob pushes invoice-due reminders for one user.
type ReminderJob struct {
	userID  string
	service *reminder.Service
}

func NewReminderJob(userID string, service *reminder.Service) *ReminderJob {
	return &ReminderJob{userID: userID, service: service}
}

// Execute aggregates the user's current month and sends a push for every
// invoice due within the lead window.
func (j *ReminderJob) Execute(ctx context.Context) error {
	sent, err := j.service.RemindUser(ctx, j.userID)
	if err != nil {
		return fmt.Errorf("reminder failed for user %s: %w", j.userID, err)
	}
	if sent > 0 {
		log.Printf("Sent %d invoice reminders to user %s", sent, j.userID)
	}
	return nil
}

func (j *ReminderJob) UserID() string {
	return j.userID
}

func (j *ReminderJob) Description() string {
	return fmt.Sprintf("Invoice reminders for user %s", j.userID)
}

// ReminderJobProvider builds one reminder job per known user, for the
// scheduler's job provider hook.
func ReminderJobProvider(service *reminder.Service) func(context.Context) ([]Job, error) {
	return func(ctx context.Context) ([]Job, error) {
		userIDs, err := service.ListUserIDs(ctx)
		if err != nil {
			return nil, err
		}
		jobs := make([]Job, 0, len(userIDs))
		for _, id := range userIDs {
			jobs = append(jobs, NewReminderJob(id, service))
		}
		return jobs, nil
	}
}
