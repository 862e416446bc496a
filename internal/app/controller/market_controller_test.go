package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/app/repository"
	"github.com/wednes/wednes-backend/internal/app/service"
	"github.com/wednes/wednes-backend/internal/db"
	"github.com/wednes/wednes-backend/pkg/lostark"
	"gorm.io/gorm"
)

// emptyMarketAPI 항상 빈 페이지를 돌려주는 업스트림 대역.
// 컨트롤러 테스트는 로컬 미러만으로 동작을 검증한다.
type emptyMarketAPI struct{}

func (emptyMarketAPI) SearchMarketItems(ctx context.Context, req lostark.MarketSearchRequest) (*lostark.MarketSearchResponse, error) {
	return &lostark.MarketSearchResponse{PageNo: req.PageNo}, nil
}

func setupMarketControllerTest(t *testing.T) (*gin.Engine, *gorm.DB, repository.MarketItemRepository, repository.ApiLogRepository) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	marketRepo := repository.NewMarketItemRepository(testDB)
	apiLogRepo := repository.NewApiLogRepository(testDB)

	marketService := service.NewMarketService(marketRepo, emptyMarketAPI{}, service.MarketServiceConfig{
		PageSize:          10,
		PageDelay:         0,
		CacheTTL:          time.Second,
		EnhancementFilter: "융화",
	})

	ctrl := NewMarketController(marketService, apiLogRepo)

	router := gin.New()
	router.GET("/tools/api", ctrl.Search)
	router.POST("/tools/api", ctrl.SearchPost)
	router.GET("/tools/export", ctrl.Export)

	return router, testDB, marketRepo, apiLogRepo
}

func TestMarketController_Search(t *testing.T) {
	router, testDB, marketRepo, apiLogRepo := setupMarketControllerTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, marketRepo.Create(&model.MarketItem{
		ItemID: 1, Name: "회복약", Grade: model.GradeNormal, CurrentMinPrice: 10, CategoryCode: model.CategoryBattleItem,
	}))
	require.NoError(t, marketRepo.Create(&model.MarketItem{
		ItemID: 2, Name: "들꽃", Grade: model.GradeNormal, CurrentMinPrice: 3, CategoryCode: model.CategoryCooking,
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tools/api?keyword=회복약", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result model.MarketSearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "회복약", result.Items[0].Name)

	// 조회 호출이 감사 로그로 남는다
	entry, err := apiLogRepo.FindLastByEndpoint("/tools/api")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, http.StatusOK, entry.StatusCode)
}

func TestMarketController_Search_InvalidCategory(t *testing.T) {
	router, testDB, _, _ := setupMarketControllerTest(t)
	defer db.CleanupTestDB(testDB)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tools/api?categoryCode=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarketController_SearchPost(t *testing.T) {
	router, testDB, marketRepo, _ := setupMarketControllerTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, marketRepo.Create(&model.MarketItem{
		ItemID: 1, Name: "회복약", Grade: model.GradeNormal, CategoryCode: model.CategoryBattleItem,
	}))

	body, _ := json.Marshal(MarketSearchRequest{
		Target:       "market",
		CategoryCode: model.CategoryBattleItem,
		ItemName:     "회복약",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tools/api", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result model.MarketSearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.TotalCount)
}

func TestMarketController_SearchPost_UnsupportedTarget(t *testing.T) {
	router, testDB, _, _ := setupMarketControllerTest(t)
	defer db.CleanupTestDB(testDB)

	body, _ := json.Marshal(MarketSearchRequest{Target: "auction"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tools/api", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarketController_Export(t *testing.T) {
	router, testDB, marketRepo, _ := setupMarketControllerTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, marketRepo.Create(&model.MarketItem{
		ItemID: 1, Name: "회복약", Grade: model.GradeNormal, CategoryCode: model.CategoryBattleItem,
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tools/export", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, w.Body.Len())
}
