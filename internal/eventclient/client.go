package eventclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Campus-Events-Management/Management-BookingService/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Client talks to the remote Event service, the system of record for event
// metadata and capacity. Both operations absorb every failure mode into
// their result: callers cannot distinguish a missing event from an
// unreachable Event service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

func New(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log,
	}
}

type updateBookingCountRequest struct {
	IsIncrement bool `json:"isIncrement"`
}

// GetEventByID fetches an event summary. It returns nil on any non-2xx
// status, transport error, or decode failure; the failure is logged only.
func (c *Client) GetEventByID(ctx context.Context, eventID string) *domain.EventSummary {
	url := fmt.Sprintf("%s/events/%s", c.baseURL, eventID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("build event request",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("event service unreachable",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("event not resolved",
			logger.String("event_id", eventID),
			logger.Int("status", resp.StatusCode),
		)
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var summary domain.EventSummary
	if err = json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		c.logger.Error("decode event response",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	return &summary
}

// UpdateBookingCount asks the Event service to adjust its booking counter
// for the event. True only on a 2xx response. There is no retry: the call
// is not idempotent and the caller decides how to proceed on failure.
func (c *Client) UpdateBookingCount(ctx context.Context, eventID string, increment bool) bool {
	url := fmt.Sprintf("%s/events/%s/bookings", c.baseURL, eventID)

	body, err := json.Marshal(updateBookingCountRequest{IsIncrement: increment})
	if err != nil {
		c.logger.Error("marshal booking count request",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("build booking count request",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("event service unreachable",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("booking count update rejected",
			logger.String("event_id", eventID),
			logger.Int("status", resp.StatusCode),
		)
		return false
	}

	return true
}
