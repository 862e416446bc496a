package repository

import (
	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/db"
	"github.com/wednes/wednes-backend/pkg/logger"
	"gorm.io/gorm"
)

// ContentRepository 공지/이벤트/알람/캘린더 미러 저장소.
// 수집은 전체 교체(삭제 후 일괄 삽입)다. 업스트림이 안정적인 키를 주지
// 않으므로 행 단위 reconcile 대신 스냅샷 교체가 맞다.
type ContentRepository interface {
	ReplaceNotices(notices []model.Notice) error
	ReplaceEvents(events []model.Event) error
	ReplaceAlarms(alarms []model.Alarm) error
	ReplaceGameContents(contents []model.GameContent) error
	FindNotices(limit int) ([]model.Notice, error)
	FindEvents(limit int) ([]model.Event, error)
	FindAlarms(limit int) ([]model.Alarm, error)
	FindGameContents() ([]model.GameContent, error)
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository 콘텐츠 저장소 생성
func NewContentRepository(database *gorm.DB) ContentRepository {
	return &contentRepository{db: database}
}

func (r *contentRepository) ReplaceNotices(notices []model.Notice) error {
	return r.replace("notices", &model.Notice{}, func(tx *gorm.DB) error {
		if len(notices) == 0 {
			return nil
		}
		return tx.Create(&notices).Error
	})
}

func (r *contentRepository) ReplaceEvents(events []model.Event) error {
	return r.replace("events", &model.Event{}, func(tx *gorm.DB) error {
		if len(events) == 0 {
			return nil
		}
		return tx.Create(&events).Error
	})
}

func (r *contentRepository) ReplaceAlarms(alarms []model.Alarm) error {
	return r.replace("alarms", &model.Alarm{}, func(tx *gorm.DB) error {
		if len(alarms) == 0 {
			return nil
		}
		return tx.Create(&alarms).Error
	})
}

func (r *contentRepository) ReplaceGameContents(contents []model.GameContent) error {
	return r.replace("game_contents", &model.GameContent{}, func(tx *gorm.DB) error {
		if len(contents) == 0 {
			return nil
		}
		return tx.Create(&contents).Error
	})
}

// replace 스냅샷 교체를 한 트랜잭션으로 수행
func (r *contentRepository) replace(table string, emptyModel interface{}, insert func(tx *gorm.DB) error) error {
	if err := db.WithRetry(func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(emptyModel).Error; err != nil {
				return err
			}
			return insert(tx)
		})
	}); err != nil {
		logger.Error("Failed to replace content table", err, map[string]interface{}{
			"table": table,
		})
		return err
	}
	return nil
}

func (r *contentRepository) FindNotices(limit int) ([]model.Notice, error) {
	var notices []model.Notice
	if err := r.db.Order("id ASC").Limit(limit).Find(&notices).Error; err != nil {
		logger.Error("Failed to find notices", err)
		return nil, err
	}
	return notices, nil
}

func (r *contentRepository) FindEvents(limit int) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.Order("id ASC").Limit(limit).Find(&events).Error; err != nil {
		logger.Error("Failed to find events", err)
		return nil, err
	}
	return events, nil
}

func (r *contentRepository) FindAlarms(limit int) ([]model.Alarm, error) {
	var alarms []model.Alarm
	if err := r.db.Order("id ASC").Limit(limit).Find(&alarms).Error; err != nil {
		logger.Error("Failed to find alarms", err)
		return nil, err
	}
	return alarms, nil
}

func (r *contentRepository) FindGameContents() ([]model.GameContent, error) {
	var contents []model.GameContent
	if err := r.db.Order("id ASC").Find(&contents).Error; err != nil {
		logger.Error("Failed to find game contents", err)
		return nil, err
	}
	return contents, nil
}
