package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/app/service"
	apperrors "github.com/wednes/wednes-backend/internal/errors"
	"github.com/wednes/wednes-backend/pkg/logger"
)

// ContentController 게임 콘텐츠 미러 컨트롤러
type ContentController struct {
	contentService service.ContentService
}

// NewContentController 콘텐츠 컨트롤러 생성
func NewContentController(contentService service.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// GetNotices 공지 목록 조회 (GET /api/v1/notices)
func (ctrl *ContentController) GetNotices(c *gin.Context) {
	notices, err := ctrl.contentService.GetNotices()
	if err != nil {
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ContentFetchFailed, "공지를 조회하는데 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, notices)
}

// GetEvents 이벤트 목록 조회 (GET /api/v1/events)
func (ctrl *ContentController) GetEvents(c *gin.Context) {
	events, err := ctrl.contentService.GetEvents()
	if err != nil {
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ContentFetchFailed, "이벤트를 조회하는데 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetAlarms 알람 목록 조회 (GET /api/v1/alarms)
func (ctrl *ContentController) GetAlarms(c *gin.Context) {
	alarms, err := ctrl.contentService.GetAlarms()
	if err != nil {
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ContentFetchFailed, "알람을 조회하는데 실패했습니다")
		return
	}
	c.JSON(http.StatusOK, alarms)
}

// CalendarEntry 캘린더 응답 항목. 저장된 JSON 텍스트 컬럼을 풀어서 돌려준다.
type CalendarEntry struct {
	CategoryName string            `json:"CategoryName"`
	ContentsName string            `json:"ContentsName"`
	ContentsIcon string            `json:"ContentsIcon"`
	MinItemLevel float64           `json:"MinItemLevel"`
	StartTimes   []string          `json:"StartTimes"`
	Location     string            `json:"Location"`
	RewardItems  []json.RawMessage `json:"RewardItems"`
}

// GetCalendar 주간 캘린더 조회 (GET /api/v1/calendar)
func (ctrl *ContentController) GetCalendar(c *gin.Context) {
	contents, err := ctrl.contentService.GetCalendar()
	if err != nil {
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ContentFetchFailed, "캘린더를 조회하는데 실패했습니다")
		return
	}

	entries := make([]CalendarEntry, 0, len(contents))
	for _, content := range contents {
		entries = append(entries, toCalendarEntry(content))
	}
	c.JSON(http.StatusOK, entries)
}

// ForceUpdate 게이트 무시 즉시 갱신 (GET /api/force-update)
func (ctrl *ContentController) ForceUpdate(c *gin.Context) {
	duration, err := ctrl.contentService.ForceRefresh(c.Request.Context())
	if err != nil {
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
		"message":  "강제 갱신 완료",
		"duration": fmt.Sprintf("%d초", int(duration.Seconds())),
	})
}

func toCalendarEntry(content model.GameContent) CalendarEntry {
	entry := CalendarEntry{
		CategoryName: content.CategoryName,
		ContentsName: content.ContentsName,
		ContentsIcon: content.ContentsIcon,
		MinItemLevel: content.MinItemLevel,
		Location:     content.Location,
		StartTimes:   []string{},
		RewardItems:  []json.RawMessage{},
	}
	if content.StartTimes != "" {
		if err := json.Unmarshal([]byte(content.StartTimes), &entry.StartTimes); err != nil {
			logger.Warn("Failed to decode start times", map[string]interface{}{
				"contents_name": content.ContentsName,
				"error":         err.Error(),
			})
		}
	}
	if content.RewardItems != "" {
		if err := json.Unmarshal([]byte(content.RewardItems), &entry.RewardItems); err != nil {
			logger.Warn("Failed to decode reward items", map[string]interface{}{
				"contents_name": content.ContentsName,
				"error":         err.Error(),
			})
		}
	}
	return entry
}
