package userclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/middleware"
)

// ErrUnavailable reports a transport failure or timeout talking to the user
// service, as opposed to a definitive "does not exist" answer.
var ErrUnavailable = errors.New("user service unavailable")

// Client checks user existence against the user service. Every call is
// bounded by the client timeout so a hung downstream cannot stall a request.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Exists asks the user service whether the given user id resolves. The
// caller's credential token is reused on the outbound call. Any 2xx response
// means the user exists; any other status means it does not.
func (c *Client) Exists(ctx context.Context, userID, token string) (bool, error) {
	requestID := middleware.GetRequestID(ctx)

	logEntry := c.logger.WithFields(logrus.Fields{
		"component":  "user_client",
		"request_id": requestID,
		"user_id":    userID,
	})

	logEntry.Debug("calling user service existence check")

	endpoint := c.baseURL + "/api/users/" + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if requestID != "" {
		req.Header.Set(middleware.RequestIDHeader, requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logEntry.WithError(err).Warn("user service unreachable")
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	exists := resp.StatusCode >= 200 && resp.StatusCode < 300
	logEntry.WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"exists": exists,
	}).Debug("existence check completed")

	return exists, nil
}
