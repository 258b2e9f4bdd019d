package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/666akuma13/interview-agent/internal/repositories"
)

// ScheduleCleanupJob periodically removes expired, unused interview
// links so the schedule table does not grow without bound.
type ScheduleCleanupJob struct {
	schedules *repositories.ScheduleRepository
	schedule  string
	logger    *zap.Logger
	cron      *cron.Cron
}

func NewScheduleCleanupJob(schedules *repositories.ScheduleRepository, schedule string, logger *zap.Logger) *ScheduleCleanupJob {
	return &ScheduleCleanupJob{
		schedules: schedules,
		schedule:  schedule,
		logger:    logger,
		cron:      cron.New(),
	}
}

// Start registers the cron entry and begins the scheduler.
func (j *ScheduleCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.RunCleanup(); err != nil {
			j.logger.Error("Schedule cleanup run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}

	j.cron.Start()
	j.logger.Info("Schedule cleanup job started", zap.String("schedule", j.schedule))
	return nil
}

func (j *ScheduleCleanupJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
		j.logger.Info("Schedule cleanup job stopped")
	}
}

// RunCleanup performs a single cleanup pass.
func (j *ScheduleCleanupJob) RunCleanup() error {
	deleted, err := j.schedules.DeleteExpired(time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete expired schedules: %w", err)
	}
	if deleted > 0 {
		j.logger.Info("Removed expired interview links", zap.Int64("count", deleted))
	}
	return nil
}
