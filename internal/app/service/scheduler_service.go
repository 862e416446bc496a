package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/pkg/logger"
)

var (
	ErrBatchInProgress = errors.New("이미 배치 수집이 실행 중입니다")
)

// LastRunTracker 마지막 배치 실행 시각의 저장소 인터페이스.
// 현재 구현은 api_logs 테이블의 꼬리 행이다 (별도 스케줄러 상태 없음).
type LastRunTracker interface {
	Create(entry *model.ApiLog) error
	FindLastByEndpoint(endpoint string) (*model.ApiLog, error)
}

// SchedulerStatus 배치 게이트 상태
type SchedulerStatus struct {
	LastBatchTime   *time.Time `json:"lastBatchTime"`
	TimeDiffMinutes *int       `json:"timeDiffMinutes"`
	ShouldRun       bool       `json:"shouldRun"`
	NextRunTime     *time.Time `json:"nextRunTime"`
}

// TriggerResult 배치 트리거 결과.
// "아직 실행 시간이 아님"은 오류가 아니라 정상적인 부정 결과다.
type TriggerResult struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Duration string           `json:"duration,omitempty"`
	Status   *SchedulerStatus `json:"data,omitempty"`
}

// SchedulerService 배치 수집 게이트 서비스 인터페이스
type SchedulerService interface {
	Status() (*SchedulerStatus, error)
	Trigger(ctx context.Context) (*TriggerResult, error)
	RunBatch(ctx context.Context) (time.Duration, error)
}

type schedulerService struct {
	tracker          LastRunTracker
	marketService    MarketService
	contentService   ContentService
	thresholdMinutes int
	clock            func() time.Time
	running          sync.Mutex
}

// NewSchedulerService 배치 게이트 서비스 생성
func NewSchedulerService(
	tracker LastRunTracker,
	marketService MarketService,
	contentService ContentService,
	thresholdMinutes int,
	clock func() time.Time,
) SchedulerService {
	if clock == nil {
		clock = time.Now
	}
	if thresholdMinutes <= 0 {
		thresholdMinutes = 60
	}
	return &schedulerService{
		tracker:          tracker,
		marketService:    marketService,
		contentService:   contentService,
		thresholdMinutes: thresholdMinutes,
		clock:            clock,
	}
}

// Status 마지막 배치 로그로부터 실행 가능 여부를 계산한다
func (s *schedulerService) Status() (*SchedulerStatus, error) {
	last, err := s.tracker.FindLastByEndpoint(model.BatchCollectEndpoint)
	if err != nil {
		return nil, err
	}

	if last == nil {
		return &SchedulerStatus{ShouldRun: true}, nil
	}

	lastRun := last.CreatedAt
	diff := int(s.clock().Sub(lastRun).Minutes())
	next := lastRun.Add(time.Duration(s.thresholdMinutes) * time.Minute)

	return &SchedulerStatus{
		LastBatchTime:   &lastRun,
		TimeDiffMinutes: &diff,
		ShouldRun:       diff >= s.thresholdMinutes,
		NextRunTime:     &next,
	}, nil
}

// Trigger 실행 시간이 되었으면 전체 수집을 수행한다.
// 아직이라면 다음 실행 가능 시각을 담은 부정 결과를 돌려준다.
func (s *schedulerService) Trigger(ctx context.Context) (*TriggerResult, error) {
	status, err := s.Status()
	if err != nil {
		return nil, err
	}

	if !status.ShouldRun {
		return &TriggerResult{
			Success: false,
			Message: "아직 실행 시간이 되지 않았습니다",
			Status:  status,
		}, nil
	}

	duration, err := s.RunBatch(ctx)
	if err != nil {
		if errors.Is(err, ErrBatchInProgress) {
			return &TriggerResult{
				Success: false,
				Message: ErrBatchInProgress.Error(),
			}, nil
		}
		return &TriggerResult{
			Success: false,
			Message: "배치 데이터 수집 실패",
		}, err
	}

	return &TriggerResult{
		Success:  true,
		Message:  "배치 데이터 수집 완료",
		Duration: fmt.Sprintf("%d초", int(duration.Seconds())),
	}, nil
}

// RunBatch 게이트를 거치지 않는 전체 수집.
// 공지/이벤트/알람/캘린더를 먼저, 이어서 전체 거래소 카테고리를 수집한다.
// 성공이든 실패든 api_logs에 한 건을 남겨 게이트가 매 호출마다
// 재시도하며 돌지 않게 한다.
func (s *schedulerService) RunBatch(ctx context.Context) (time.Duration, error) {
	if !s.running.TryLock() {
		return 0, ErrBatchInProgress
	}
	defer s.running.Unlock()

	logger.Info("Starting batch collection")
	start := s.clock()

	batchErr := s.contentService.CollectAll(ctx)
	marketResult := s.marketService.CollectAll(ctx)

	duration := s.clock().Sub(start)

	entry := &model.ApiLog{
		Endpoint:     model.BatchCollectEndpoint,
		Method:       "POST",
		StatusCode:   200,
		ResponseTime: duration.Milliseconds(),
	}
	if batchErr != nil {
		entry.StatusCode = 500
		msg := batchErr.Error()
		entry.ErrorMessage = &msg
	}
	if err := s.tracker.Create(entry); err != nil {
		logger.Error("Failed to record batch log", err)
		if batchErr == nil {
			batchErr = err
		}
	}

	if batchErr != nil {
		logger.Error("Batch collection failed", batchErr, map[string]interface{}{
			"duration": duration.String(),
		})
		return duration, batchErr
	}

	logger.Info("Batch collection completed", map[string]interface{}{
		"duration":      duration.String(),
		"processed":     marketResult.Processed,
		"inserted":      marketResult.Inserted,
		"price_changed": marketResult.PriceChanged,
	})
	return duration, nil
}
