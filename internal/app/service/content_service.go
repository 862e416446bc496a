package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/app/repository"
	"github.com/wednes/wednes-backend/pkg/logger"
	"github.com/wednes/wednes-backend/pkg/lostark"
)

// contentFetchLimit 소스당 보관 상한
const contentFetchLimit = 50

// ContentAPI 업스트림 공지/이벤트/알람/캘린더 인터페이스
type ContentAPI interface {
	GetNotices(ctx context.Context) ([]lostark.Notice, error)
	GetEvents(ctx context.Context) ([]lostark.Event, error)
	GetAlarms(ctx context.Context) ([]lostark.Alarm, error)
	GetGameCalendar(ctx context.Context) ([]lostark.GameContent, error)
}

// ContentService 게임 콘텐츠 미러 서비스 인터페이스
type ContentService interface {
	CollectAll(ctx context.Context) error
	ForceRefresh(ctx context.Context) (time.Duration, error)
	GetNotices() ([]model.Notice, error)
	GetEvents() ([]model.Event, error)
	GetAlarms() ([]model.Alarm, error)
	GetCalendar() ([]model.GameContent, error)
}

type contentService struct {
	repo repository.ContentRepository
	api  ContentAPI
}

// NewContentService 게임 콘텐츠 서비스 생성
func NewContentService(repo repository.ContentRepository, api ContentAPI) ContentService {
	return &contentService{repo: repo, api: api}
}

// CollectAll 공지/이벤트/알람/캘린더 수집.
// 업스트림 실패는 해당 소스만 건너뛰고 기존 미러를 유지한다.
// 영속성 실패만 오류로 전파한다.
func (s *contentService) CollectAll(ctx context.Context) error {
	if notices, err := s.api.GetNotices(ctx); err != nil {
		logger.Warn("Failed to fetch notices, keeping current mirror", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		if err := s.repo.ReplaceNotices(toNoticeModels(notices)); err != nil {
			return err
		}
	}

	if events, err := s.api.GetEvents(ctx); err != nil {
		logger.Warn("Failed to fetch events, keeping current mirror", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		if err := s.repo.ReplaceEvents(toEventModels(events)); err != nil {
			return err
		}
	}

	if alarms, err := s.api.GetAlarms(ctx); err != nil {
		logger.Warn("Failed to fetch alarms, keeping current mirror", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		if err := s.repo.ReplaceAlarms(toAlarmModels(alarms)); err != nil {
			return err
		}
	}

	if contents, err := s.api.GetGameCalendar(ctx); err != nil {
		logger.Warn("Failed to fetch game calendar, keeping current mirror", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		if err := s.repo.ReplaceGameContents(toGameContentModels(contents)); err != nil {
			return err
		}
	}

	return nil
}

// ForceRefresh 콘텐츠 미러 강제 재구축 (관리용).
// 거래소 미러는 건드리지 않는다.
func (s *contentService) ForceRefresh(ctx context.Context) (time.Duration, error) {
	logger.Info("Starting forced content refresh")
	start := time.Now()

	if err := s.CollectAll(ctx); err != nil {
		return time.Since(start), err
	}

	duration := time.Since(start)
	logger.Info("Forced content refresh completed", map[string]interface{}{
		"duration": duration.String(),
	})
	return duration, nil
}

func (s *contentService) GetNotices() ([]model.Notice, error) {
	return s.repo.FindNotices(contentFetchLimit)
}

func (s *contentService) GetEvents() ([]model.Event, error) {
	return s.repo.FindEvents(contentFetchLimit)
}

func (s *contentService) GetAlarms() ([]model.Alarm, error) {
	return s.repo.FindAlarms(contentFetchLimit)
}

func (s *contentService) GetCalendar() ([]model.GameContent, error) {
	return s.repo.FindGameContents()
}

func toNoticeModels(notices []lostark.Notice) []model.Notice {
	if len(notices) > contentFetchLimit {
		notices = notices[:contentFetchLimit]
	}
	result := make([]model.Notice, 0, len(notices))
	for _, n := range notices {
		result = append(result, model.Notice{
			Title:     n.Title,
			Date:      n.Date,
			Link:      n.Link,
			Thumbnail: n.Thumbnail,
		})
	}
	return result
}

func toEventModels(events []lostark.Event) []model.Event {
	if len(events) > contentFetchLimit {
		events = events[:contentFetchLimit]
	}
	result := make([]model.Event, 0, len(events))
	for _, e := range events {
		result = append(result, model.Event{
			Title:      e.Title,
			Thumbnail:  e.Thumbnail,
			Link:       e.Link,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
			RewardDate: e.RewardDate,
		})
	}
	return result
}

func toAlarmModels(alarms []lostark.Alarm) []model.Alarm {
	if len(alarms) > contentFetchLimit {
		alarms = alarms[:contentFetchLimit]
	}
	result := make([]model.Alarm, 0, len(alarms))
	for _, a := range alarms {
		result = append(result, model.Alarm{
			AlarmType: a.AlarmType,
			Contents:  a.Contents,
			StartDate: a.StartDate,
			EndDate:   a.EndDate,
		})
	}
	return result
}

func toGameContentModels(contents []lostark.GameContent) []model.GameContent {
	result := make([]model.GameContent, 0, len(contents))
	for _, c := range contents {
		startTimes, err := json.Marshal(c.StartTimes)
		if err != nil {
			startTimes = []byte("[]")
		}
		rewardItems, err := json.Marshal(c.RewardItems)
		if err != nil {
			rewardItems = []byte("[]")
		}
		result = append(result, model.GameContent{
			CategoryName: c.CategoryName,
			ContentsName: c.ContentsName,
			ContentsIcon: c.ContentsIcon,
			MinItemLevel: c.MinItemLevel,
			StartTimes:   string(startTimes),
			Location:     c.Location,
			RewardItems:  string(rewardItems),
		})
	}
	return result
}
