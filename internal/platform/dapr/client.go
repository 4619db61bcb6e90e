package dapr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

// Client talks to the Dapr sidecar HTTP API for service invocation and state
// access. An absent payload (missing key, target returned nothing) is a
// first-class outcome reported through the found flag, distinct from an
// error: err is non-nil only for transport or protocol failures.
type Client interface {
	InvokeMethod(ctx context.Context, appID, method string) ([]byte, bool, error)
	GetState(ctx context.Context, storeName, key string) ([]byte, bool, error)
	SaveState(ctx context.Context, storeName, key string, value []byte) error
}

type client struct {
	log     *logger.Logger
	httpc   *http.Client
	baseURL string
}

// NewClient builds a sidecar client for the given host and HTTP port. The
// underlying http.Client pools connections and is shared across requests.
func NewClient(log *logger.Logger, host, port string) Client {
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3500"
	}
	return &client{
		log:     log.With("service", "DaprClient"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
		baseURL: fmt.Sprintf("http://%s:%s/v1.0", host, port),
	}
}

func (c *client) InvokeMethod(ctx context.Context, appID, method string) ([]byte, bool, error) {
	url := fmt.Sprintf("%s/invoke/%s/method/%s", c.baseURL, appID, method)
	body, status, err := c.get(ctx, url)
	if err != nil {
		return nil, false, domain.Dependency(appID, err)
	}
	switch {
	case status == http.StatusNotFound || status == http.StatusNoContent:
		return nil, false, nil
	case status >= 200 && status < 300:
		if len(body) == 0 {
			return nil, false, nil
		}
		return body, true, nil
	default:
		return nil, false, domain.Dependency(appID, fmt.Errorf("invoke %s: status %d: %s", method, status, truncate(body)))
	}
}

func (c *client) GetState(ctx context.Context, storeName, key string) ([]byte, bool, error) {
	url := fmt.Sprintf("%s/state/%s/%s", c.baseURL, storeName, key)
	body, status, err := c.get(ctx, url)
	if err != nil {
		return nil, false, domain.Dependency(storeName, err)
	}
	switch {
	case status == http.StatusNoContent || status == http.StatusNotFound:
		return nil, false, nil
	case status >= 200 && status < 300:
		if len(body) == 0 {
			return nil, false, nil
		}
		return body, true, nil
	default:
		return nil, false, domain.Dependency(storeName, fmt.Errorf("get state %s: status %d: %s", key, status, truncate(body)))
	}
}

func (c *client) SaveState(ctx context.Context, storeName, key string, value []byte) error {
	entry := []map[string]any{{"key": key, "value": json.RawMessage(value)}}
	payload, err := json.Marshal(entry)
	if err != nil {
		return domain.Dependency(storeName, fmt.Errorf("encode state entry: %w", err))
	}

	url := fmt.Sprintf("%s/state/%s", c.baseURL, storeName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return domain.Dependency(storeName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return domain.Dependency(storeName, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Dependency(storeName, fmt.Errorf("save state %s: status %d: %s", key, resp.StatusCode, truncate(body)))
	}
	return nil
}

func (c *client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func truncate(b []byte) string {
	const max = 256
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
