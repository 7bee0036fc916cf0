package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultEndpoint is the homework-statuses endpoint of the Practicum API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const defaultHTTPTimeout = 30 * time.Second

type ClientConfig struct {
	// Token is the Practicum OAuth token (sent as "Authorization: OAuth <token>").
	Token string
	// Endpoint overrides DefaultEndpoint. Used in tests.
	Endpoint string
	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration
}

type Client struct {
	http     *resty.Client
	endpoint string
	token    string
}

func NewClient(cfg ClientConfig) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	rc := resty.New()
	rc.SetTimeout(timeout)
	rc.SetRetryCount(0)

	return &Client{http: rc, endpoint: endpoint, token: cfg.Token}
}

// HomeworkStatuses fetches homeworks whose status changed at or after the
// since cursor (unix seconds). It returns the raw JSON body unchanged;
// shape validation is CheckResponse's job.
func (c *Client) HomeworkStatuses(ctx context.Context, since int64) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "OAuth "+c.token).
		SetQueryParam("from_date", strconv.FormatInt(since, 10)).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEndpointUnreachable, err)
	}
	if code := resp.StatusCode(); code != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrEndpointUnavailable, code)
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, ErrDecode
	}
	return body, nil
}
