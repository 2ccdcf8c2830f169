// Package fetch lists asset paths from a remote GitHub repository tree.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/agenthands/iconcat/internal/config"
)

const defaultBaseURL = "https://api.github.com"

// Client fetches the recursive git tree of the configured repository and
// filters it down to the asset list the engine reconciles against.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	// Token is an optional GitHub API token for rate-limited environments.
	Token   string
	Retries int
	source  config.SourceConfig
}

func NewClient(source config.SourceConfig, token string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: defaultBaseURL,
		Token:   token,
		Retries: 3,
		source:  source,
	}
}

type treeResponse struct {
	Tree []struct {
		Path string `json:"path"`
		Type string `json:"type"`
	} `json:"tree"`
	Truncated bool `json:"truncated"`
}

// ListAssets returns the sorted relative paths of all .svg blobs under the
// configured path prefix, with the prefix stripped.
func (c *Client) ListAssets(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1",
		c.BaseURL, c.source.Owner, c.source.Repo, c.source.Ref)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var tree treeResponse
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode tree response: %w", err)
	}
	if tree.Truncated {
		return nil, fmt.Errorf("tree listing for %s/%s@%s was truncated by the API",
			c.source.Owner, c.source.Repo, c.source.Ref)
	}

	var assets []string
	for _, item := range tree.Tree {
		if item.Type != "" && item.Type != "blob" {
			continue
		}
		if !strings.HasPrefix(item.Path, c.source.PathPrefix) {
			continue
		}
		if !strings.HasSuffix(item.Path, ".svg") {
			continue
		}
		assets = append(assets, strings.TrimPrefix(item.Path, c.source.PathPrefix))
	}

	sort.Strings(assets)
	return assets, nil
}

// get retries transient failures with a short backoff. Anything beyond
// bounded retries is the caller's problem; the engine itself never blocks.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")
		if c.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.Token)
		}

		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("transient status %d from %s", resp.StatusCode, url)
			continue
		default:
			return nil, fmt.Errorf("request to %s failed with status %d: %s", url, resp.StatusCode, string(body))
		}
	}
	return nil, fmt.Errorf("request to %s failed after %d attempts: %w", url, c.Retries+1, lastErr)
}
