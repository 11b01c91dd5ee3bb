package geoapify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// maxBodyBytes bounds how much of a provider response is read.
const maxBodyBytes = 8 << 20

// StatusError is returned for non-2xx provider responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider status %d: %s", e.Code, e.Body)
}

func (g *GeoapifyClient) newRequest(
	ctx context.Context,
	path string,
	params url.Values,
) (*http.Request, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("apiKey", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (g *GeoapifyClient) do(endpoint string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := g.session.Do(req)
	if err != nil {
		g.metrics.ProviderAttempt(endpoint, 0, time.Since(start))
		return nil, err
	}
	g.metrics.ProviderAttempt(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429 and 5xx
// responses) using exponential backoff while respecting context cancellation.
func (g *GeoapifyClient) doWithRetry(
	ctx context.Context,
	endpoint string,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	backoff := g.backoff

	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := g.do(endpoint, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) || attempt == g.maxAttempts {
			return nil, lastErr
		}

		g.log.WithError(err).WithFields(logrus.Fields{
			"endpoint": endpoint,
			"attempt":  attempt,
		}).Debug("retrying provider request")

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// fetch performs a GET with retry and returns the full response body.
func (g *GeoapifyClient) fetch(
	ctx context.Context,
	endpoint string,
	path string,
	params url.Values,
) ([]byte, error) {
	resp, err := g.doWithRetry(ctx, endpoint, func() (*http.Request, error) {
		return g.newRequest(ctx, path, params)
	})
	if err != nil {
		return nil, fmt.Errorf("execute %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("%s response body is empty", endpoint)
	}

	return body, nil
}
