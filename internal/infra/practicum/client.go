// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/apperror"

	"github.com/sirupsen/logrus"
)

// maxErrorBody limits how much of a non-200 body is logged.
const maxErrorBody = 512

// Client requests homework statuses from the Practicum API.
type Client struct {
	endpoint string
	token    string
	client   *http.Client
	logger   *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetStatuses returns the raw body of the statuses changed since fromDate (Unix seconds).
// Failures are not retried here; the polling loop is the only backoff.
func (c *Client) GetStatuses(ctx context.Context, fromDate int64) (json.RawMessage, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstreamUnavailable, err, "invalid endpoint")
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstreamUnavailable, err, "failed to create request")
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	c.logger.WithField("from_date", fromDate).Debug("Requesting homework statuses")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstreamUnavailable, err, "endpoint unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Debug("Unexpected response from homework API")
		return nil, apperror.New(apperror.KindUpstreamUnavailable, "",
			fmt.Sprintf("API unavailable, status code %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUpstreamUnavailable, err, "failed to read response body")
	}
	if !json.Valid(body) {
		return nil, apperror.New(apperror.KindMalformedResponse, "response", "response body is not valid JSON")
	}
	return body, nil
}
