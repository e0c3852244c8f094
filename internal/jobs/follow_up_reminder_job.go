package jobs

import (
	"context"
	"time"

	"github.com/xbl/lead-tracker/internal/domain"
	"go.uber.org/zap"
)

// FollowUpReminderJobName is the name of the follow-up reminder job
const FollowUpReminderJobName = "follow_up_reminder"

// FollowUpLister lists open leads due for follow-up on or before a date.
// It lets the job call the lead service without importing the service package.
type FollowUpLister interface {
	ListNeedingFollowUp(ctx context.Context, asOf domain.Date) ([]domain.FollowUpSummaryDTO, error)
}

// FollowUpReminderJob logs a warning for every lead whose next follow-up is due.
type FollowUpReminderJob struct {
	leads   FollowUpLister
	logger  *zap.Logger
	timeout time.Duration
	today   func() domain.Date
}

// NewFollowUpReminderJob creates a new follow-up reminder job.
// The timeout bounds a single run.
func NewFollowUpReminderJob(leads FollowUpLister, logger *zap.Logger, timeout time.Duration) *FollowUpReminderJob {
	return &FollowUpReminderJob{
		leads:   leads,
		logger:  logger.With(zap.String("job_name", FollowUpReminderJobName)),
		timeout: timeout,
		today:   domain.Today,
	}
}

// Run executes one reminder pass and returns the number of due leads.
// Errors are logged, never returned, since the scheduler has no caller to report to.
func (j *FollowUpReminderJob) Run() int {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	asOf := j.today()
	due, err := j.leads.ListNeedingFollowUp(ctx, asOf)
	if err != nil {
		j.logger.Error("failed to list follow-ups", zap.Error(err))
		return 0
	}

	for _, lead := range due {
		j.logger.Warn("follow-up due",
			zap.Uint("lead_id", lead.ID),
			zap.String("customer", lead.CustomerName),
			zap.String("category", string(lead.ProjectCategory)),
			zap.String("sales_person", lead.AssignedSalesPerson),
			zap.String("status", string(lead.Status)),
			zap.String("next_follow_up_date", lead.NextFollowUpDate.String()))
	}

	j.logger.Info("follow-up reminder pass finished",
		zap.String("as_of", asOf.String()),
		zap.Int("due", len(due)))

	return len(due)
}

// DefaultFollowUpReminderTimeout bounds one reminder pass
const DefaultFollowUpReminderTimeout = time.Minute

// RegisterFollowUpReminderJob adds the follow-up reminder job to the scheduler.
// With runOnStartup set, one pass also runs immediately in the background.
func RegisterFollowUpReminderJob(scheduler *Scheduler, leads FollowUpLister, logger *zap.Logger, cronExpr string, timeout time.Duration, runOnStartup bool) error {
	job := NewFollowUpReminderJob(leads, logger, timeout)

	if runOnStartup {
		go job.Run()
	}

	return scheduler.AddJob(FollowUpReminderJobName, cronExpr, func() { job.Run() })
}
