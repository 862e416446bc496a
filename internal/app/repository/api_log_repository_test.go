package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/db"
	"gorm.io/gorm"
)

func setupApiLogTest(t *testing.T) (*gorm.DB, ApiLogRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewApiLogRepository(testDB)
	return testDB, repo
}

func TestApiLogRepository_Create(t *testing.T) {
	testDB, repo := setupApiLogTest(t)
	defer db.CleanupTestDB(testDB)

	entry := &model.ApiLog{
		Endpoint:     model.BatchCollectEndpoint,
		Method:       "POST",
		StatusCode:   200,
		ResponseTime: 1520,
	}

	err := repo.Create(entry)
	assert.NoError(t, err)
	assert.NotZero(t, entry.ID)
}

func TestApiLogRepository_FindLastByEndpoint(t *testing.T) {
	testDB, repo := setupApiLogTest(t)
	defer db.CleanupTestDB(testDB)

	// 기록이 없으면 오류 없이 nil
	entry, err := repo.FindLastByEndpoint(model.BatchCollectEndpoint)
	assert.NoError(t, err)
	assert.Nil(t, entry)

	old := &model.ApiLog{
		Endpoint:     model.BatchCollectEndpoint,
		Method:       "POST",
		StatusCode:   500,
		ResponseTime: 300,
		CreatedAt:    time.Now().Add(-2 * time.Hour),
	}
	require.NoError(t, repo.Create(old))

	recent := &model.ApiLog{
		Endpoint:     model.BatchCollectEndpoint,
		Method:       "POST",
		StatusCode:   200,
		ResponseTime: 1200,
	}
	require.NoError(t, repo.Create(recent))

	// 다른 엔드포인트 행은 무시된다
	require.NoError(t, repo.Create(&model.ApiLog{
		Endpoint:     "/tools/api",
		Method:       "GET",
		StatusCode:   200,
		ResponseTime: 20,
	}))

	entry, err = repo.FindLastByEndpoint(model.BatchCollectEndpoint)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, recent.ID, entry.ID)
	assert.Equal(t, 200, entry.StatusCode)
}
