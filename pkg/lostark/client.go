package lostark

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 로스트아크 오픈 API 클라이언트.
// 재시도하지 않는다. 실패 처리 정책(카테고리 중단, 부분 성공 등)은 호출자 몫이다.
type Client struct {
	config Config
	http   *resty.Client
}

// NewClient creates a new Lost Ark API client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", fmt.Sprintf("bearer %s", config.APIKey))

	return &Client{config: config, http: httpClient}, nil
}

// SearchMarketItems 거래소 아이템 검색 (POST /markets/items)
func (c *Client) SearchMarketItems(ctx context.Context, req MarketSearchRequest) (*MarketSearchResponse, error) {
	var result MarketSearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/markets/items")
	if err != nil {
		return nil, fmt.Errorf("failed to call /markets/items: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNotices 공지사항 조회 (GET /news/notices)
func (c *Client) GetNotices(ctx context.Context) ([]Notice, error) {
	var notices []Notice
	if err := c.get(ctx, "/news/notices", &notices); err != nil {
		return nil, err
	}
	return notices, nil
}

// GetEvents 이벤트 조회 (GET /news/events)
func (c *Client) GetEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.get(ctx, "/news/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetAlarms 알람 조회 (GET /news/alarms)
func (c *Client) GetAlarms(ctx context.Context) ([]Alarm, error) {
	var result AlarmResponse
	if err := c.get(ctx, "/news/alarms", &result); err != nil {
		return nil, err
	}
	return result.Alarms, nil
}

// GetGameCalendar 게임 콘텐츠 캘린더 조회 (GET /gamecontents/calendar)
func (c *Client) GetGameCalendar(ctx context.Context) ([]GameContent, error) {
	var contents []GameContent
	if err := c.get(ctx, "/gamecontents/calendar", &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	return checkStatus(resp)
}

func checkStatus(resp *resty.Response) error {
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Request.URL)
	case resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, resp.Request.URL)
	default:
		return fmt.Errorf("%w: %s returned status %d: %s",
			ErrUpstream, resp.Request.URL, resp.StatusCode(), resp.String())
	}
}
