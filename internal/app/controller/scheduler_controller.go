package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wednes/wednes-backend/internal/app/service"
	apperrors "github.com/wednes/wednes-backend/internal/errors"
)

// SchedulerController 배치 게이트 컨트롤러
type SchedulerController struct {
	schedulerService service.SchedulerService
}

// NewSchedulerController 배치 게이트 컨트롤러 생성
func NewSchedulerController(schedulerService service.SchedulerService) *SchedulerController {
	return &SchedulerController{schedulerService: schedulerService}
}

// Status 배치 게이트 상태 조회 (GET /api/scheduler)
func (ctrl *SchedulerController) Status(c *gin.Context) {
	status, err := ctrl.schedulerService.Status()
	if err != nil {
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.BatchStatusFailed, "배치 상태를 확인하는데 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    status,
	})
}

// Trigger 배치 게이트 트리거 (POST /api/scheduler)
// 임계 시간이 지났을 때만 수집이 실행된다.
func (ctrl *SchedulerController) Trigger(c *gin.Context) {
	result, err := ctrl.schedulerService.Trigger(c.Request.Context())
	if err != nil {
		info := apperrors.ParseError(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": info.Message,
			"error":   info.Code,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Collect 즉시 전체 수집 (POST /api/batch/collect)
// 게이트를 거치지 않고 무조건 실행한다. 중복 실행만 막는다.
func (ctrl *SchedulerController) Collect(c *gin.Context) {
	duration, err := ctrl.schedulerService.RunBatch(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrBatchInProgress) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": service.ErrBatchInProgress.Error(),
			})
			return
		}
		info := apperrors.ParseError(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": info.Message,
			"error":   info.Code,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "배치 데이터 수집 완료",
		"duration": fmt.Sprintf("%d초", int(duration.Seconds())),
	})
}

// CollectStatus 최근 수집 여부 확인 (GET /api/batch/collect?status=true)
func (ctrl *SchedulerController) CollectStatus(c *gin.Context) {
	status, err := ctrl.schedulerService.Status()
	if err != nil {
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.BatchStatusFailed, "배치 상태를 확인하는데 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"isRecent": !status.ShouldRun,
		"data":     status,
	})
}
