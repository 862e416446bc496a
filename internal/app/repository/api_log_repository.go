package repository

import (
	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/db"
	"github.com/wednes/wednes-backend/pkg/logger"
	"gorm.io/gorm"
)

// ApiLogRepository API 호출 로그 저장소 인터페이스. 삽입과 꼬리 조회만 있다.
type ApiLogRepository interface {
	Create(log *model.ApiLog) error
	FindLastByEndpoint(endpoint string) (*model.ApiLog, error)
}

type apiLogRepository struct {
	db *gorm.DB
}

// NewApiLogRepository API 로그 저장소 생성
func NewApiLogRepository(database *gorm.DB) ApiLogRepository {
	return &apiLogRepository{db: database}
}

// Create 로그 한 건 추가
func (r *apiLogRepository) Create(entry *model.ApiLog) error {
	if err := db.WithRetry(func() error {
		return r.db.Create(entry).Error
	}); err != nil {
		logger.Error("Failed to create api log", err, map[string]interface{}{
			"endpoint": entry.Endpoint,
		})
		return err
	}
	return nil
}

// FindLastByEndpoint 특정 엔드포인트의 가장 최근 로그. 없으면 (nil, nil)
func (r *apiLogRepository) FindLastByEndpoint(endpoint string) (*model.ApiLog, error) {
	var entry model.ApiLog
	if err := r.db.Where("endpoint = ?", endpoint).
		Order("created_at DESC, id DESC").
		First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		logger.Error("Failed to find last api log", err, map[string]interface{}{
			"endpoint": endpoint,
		})
		return nil, err
	}
	return &entry, nil
}
