// Package httpcall invokes sibling services over plain HTTP for deployments
// that run without the Dapr sidecar. Logical app ids map to base URLs; call
// semantics match the sidecar client so callers cannot tell the two apart.
package httpcall

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yungbote/storefront-backend/internal/domain"
	"github.com/yungbote/storefront-backend/internal/platform/logger"
)

type Client struct {
	log   *logger.Logger
	httpc *http.Client
	// appID -> base URL, e.g. "user-service" -> "http://user-service:8080"
	targets map[string]string
}

func New(log *logger.Logger, targets map[string]string) *Client {
	return &Client{
		log:     log.With("service", "HTTPCallClient"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
		targets: targets,
	}
}

// InvokeMethod performs GET {base}/{method} against the named app. Absent
// payload (404 or empty body) is reported through the found flag; transport
// failures and 5xx responses become dependency errors.
func (c *Client) InvokeMethod(ctx context.Context, appID, method string) ([]byte, bool, error) {
	base, ok := c.targets[appID]
	if !ok {
		return nil, false, domain.Dependency(appID, fmt.Errorf("no address configured"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/"+method, nil)
	if err != nil {
		return nil, false, domain.Dependency(appID, err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, false, domain.Dependency(appID, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, domain.Dependency(appID, fmt.Errorf("read response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent:
		return nil, false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if len(body) == 0 {
			return nil, false, nil
		}
		return body, true, nil
	default:
		return nil, false, domain.Dependency(appID, fmt.Errorf("invoke %s: status %d", method, resp.StatusCode))
	}
}
