package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wednes/wednes-backend/internal/app/model"
	"github.com/wednes/wednes-backend/internal/app/repository"
	"github.com/wednes/wednes-backend/internal/app/service"
	apperrors "github.com/wednes/wednes-backend/internal/errors"
	"github.com/wednes/wednes-backend/pkg/logger"
)

// MarketController 거래소 조회 컨트롤러
type MarketController struct {
	marketService service.MarketService
	apiLogRepo    repository.ApiLogRepository
}

// NewMarketController 거래소 컨트롤러 생성
func NewMarketController(marketService service.MarketService, apiLogRepo repository.ApiLogRepository) *MarketController {
	return &MarketController{
		marketService: marketService,
		apiLogRepo:    apiLogRepo,
	}
}

// MarketSearchRequest POST /tools/api 요청 바디.
// Sort/SortCondition은 업스트림 포맷 호환을 위해 받지만 로컬 미러 조회는
// 등급/이름 고정 정렬이라 별도로 반영하지 않는다.
type MarketSearchRequest struct {
	Target        string `json:"target"`
	CategoryCode  int    `json:"CategoryCode"`
	ItemName      string `json:"ItemName"`
	Sort          string `json:"Sort"`
	SortCondition string `json:"SortCondition"`
}

// Search 거래소 조회 (GET /tools/api?keyword=&categoryCode=)
// 조회 전에 순환 카테고리 한 개가 기회적으로 갱신된다.
func (ctrl *MarketController) Search(c *gin.Context) {
	start := time.Now()

	keyword := c.Query("keyword")
	categoryCode := 0
	if raw := c.Query("categoryCode"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.MarketInvalidCategory, "잘못된 카테고리 코드입니다")
			return
		}
		categoryCode = parsed
	}

	result, err := ctrl.marketService.SearchItems(c.Request.Context(), keyword, categoryCode)
	if err != nil {
		ctrl.recordLog("/tools/api", http.MethodGet, http.StatusInternalServerError, start, err)
		apperrors.InternalError(c, "거래소 데이터를 조회하는데 실패했습니다")
		return
	}

	ctrl.recordLog("/tools/api", http.MethodGet, http.StatusOK, start, nil)
	c.JSON(http.StatusOK, result)
}

// SearchPost 거래소 조회 (POST /tools/api {target:"market", ...})
func (ctrl *MarketController) SearchPost(c *gin.Context) {
	start := time.Now()

	var req MarketSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "요청 본문이 올바르지 않습니다")
		return
	}
	if req.Target != "market" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "지원하지 않는 target입니다")
		return
	}

	result, err := ctrl.marketService.SearchItems(c.Request.Context(), req.ItemName, req.CategoryCode)
	if err != nil {
		ctrl.recordLog("/tools/api", http.MethodPost, http.StatusInternalServerError, start, err)
		apperrors.InternalError(c, "거래소 데이터를 조회하는데 실패했습니다")
		return
	}

	ctrl.recordLog("/tools/api", http.MethodPost, http.StatusOK, start, nil)
	c.JSON(http.StatusOK, result)
}

// Export 거래소 조회 결과 엑셀 다운로드 (GET /tools/export)
func (ctrl *MarketController) Export(c *gin.Context) {
	keyword := c.Query("keyword")
	categoryCode := 0
	if raw := c.Query("categoryCode"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.MarketInvalidCategory, "잘못된 카테고리 코드입니다")
			return
		}
		categoryCode = parsed
	}

	file, err := ctrl.marketService.ExportItems(keyword, categoryCode)
	if err != nil {
		apperrors.InternalError(c, "엑셀 파일 생성에 실패했습니다")
		return
	}

	filename := fmt.Sprintf("market_items_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := file.Write(c.Writer); err != nil {
		logger.Error("Failed to write excel response", err)
	}
}

// recordLog 조회 호출 감사 로그. 로그 실패가 응답을 막지는 않는다.
func (ctrl *MarketController) recordLog(endpoint, method string, status int, start time.Time, callErr error) {
	entry := &model.ApiLog{
		Endpoint:     endpoint,
		Method:       method,
		StatusCode:   status,
		ResponseTime: time.Since(start).Milliseconds(),
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.ErrorMessage = &msg
	}
	if err := ctrl.apiLogRepo.Create(entry); err != nil {
		logger.Warn("Failed to record api log", map[string]interface{}{
			"endpoint": endpoint,
			"error":    err.Error(),
		})
	}
}
