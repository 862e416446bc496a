package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wednes/wednes-backend/internal/app/service"
)

// fakeSchedulerService 고정 응답을 돌려주는 배치 게이트 대역
type fakeSchedulerService struct {
	status     *service.SchedulerStatus
	statusErr  error
	trigger    *service.TriggerResult
	triggerErr error
	runErr     error
}

func (f *fakeSchedulerService) Status() (*service.SchedulerStatus, error) {
	return f.status, f.statusErr
}

func (f *fakeSchedulerService) Trigger(ctx context.Context) (*service.TriggerResult, error) {
	return f.trigger, f.triggerErr
}

func (f *fakeSchedulerService) RunBatch(ctx context.Context) (time.Duration, error) {
	return 3 * time.Second, f.runErr
}

func setupSchedulerControllerTest(fake *fakeSchedulerService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewSchedulerController(fake)
	router := gin.New()
	router.GET("/api/scheduler", ctrl.Status)
	router.POST("/api/scheduler", ctrl.Trigger)
	router.GET("/api/batch/collect", ctrl.CollectStatus)
	router.POST("/api/batch/collect", ctrl.Collect)
	return router
}

func TestSchedulerController_Status(t *testing.T) {
	diff := 30
	router := setupSchedulerControllerTest(&fakeSchedulerService{
		status: &service.SchedulerStatus{TimeDiffMinutes: &diff, ShouldRun: false},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scheduler", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                    `json:"success"`
		Data    service.SchedulerStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.False(t, body.Data.ShouldRun)
	require.NotNil(t, body.Data.TimeDiffMinutes)
	assert.Equal(t, 30, *body.Data.TimeDiffMinutes)
}

func TestSchedulerController_Trigger_NotDue(t *testing.T) {
	router := setupSchedulerControllerTest(&fakeSchedulerService{
		trigger: &service.TriggerResult{Success: false, Message: "아직 실행 시간이 되지 않았습니다"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/scheduler", nil)
	router.ServeHTTP(w, req)

	// 게이트가 닫혀 있어도 HTTP 수준에서는 정상 응답이다
	require.Equal(t, http.StatusOK, w.Code)

	var result service.TriggerResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
}

func TestSchedulerController_Collect(t *testing.T) {
	router := setupSchedulerControllerTest(&fakeSchedulerService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/batch/collect", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "배치 데이터 수집 완료")
}

func TestSchedulerController_Collect_InProgress(t *testing.T) {
	router := setupSchedulerControllerTest(&fakeSchedulerService{
		runErr: service.ErrBatchInProgress,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/batch/collect", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
