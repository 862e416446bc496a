package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/wednes/wednes-backend/internal/app/service"
	"github.com/wednes/wednes-backend/pkg/logger"
)

// BatchScheduler 배치 수집 게이트를 주기적으로 두드리는 스케줄러.
// 게이트가 임계 시간을 판단하므로 cron 주기는 짧아도 안전하다.
type BatchScheduler struct {
	cron             *cron.Cron
	schedulerService service.SchedulerService
	spec             string
}

// NewBatchScheduler 배치 스케줄러 생성
func NewBatchScheduler(schedulerService service.SchedulerService, spec string) *BatchScheduler {
	return &BatchScheduler{
		cron:             cron.New(),
		schedulerService: schedulerService,
		spec:             spec,
	}
}

// Start 스케줄러 시작
func (s *BatchScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		result, err := s.schedulerService.Trigger(context.Background())
		if err != nil {
			logger.Error("Scheduled batch collection failed", err)
			return
		}

		if !result.Success {
			logger.Debug("Scheduled batch collection skipped", map[string]interface{}{
				"message": result.Message,
			})
			return
		}

		logger.Info("Scheduled batch collection completed", map[string]interface{}{
			"duration": result.Duration,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for batch collection", err)
		return err
	}

	s.cron.Start()
	logger.Info("Batch scheduler started successfully", map[string]interface{}{
		"spec": s.spec,
	})

	return nil
}

// Stop 스케줄러 중지
func (s *BatchScheduler) Stop() {
	logger.Info("Stopping batch scheduler...")
	s.cron.Stop()
	logger.Info("Batch scheduler stopped")
}
