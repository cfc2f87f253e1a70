package shieldsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// apiURL joins the base URL and an endpoint path.
func (c *Client) apiURL(path string) string {
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// do performs one API request and decodes the response into target (which
// may be nil for endpoints whose body is ignored).
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
	target any,
	expectedStatus int,
) error {
	endpoint := c.apiURL(path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	return decodeJSON(resp, target, expectedStatus)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, target, http.StatusOK)
}

func (c *Client) post(ctx context.Context, path string, body, target any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, target, http.StatusOK)
}

func (c *Client) put(ctx context.Context, path string, body, target any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, target, http.StatusOK)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, http.StatusNoContent)
}

// decodeJSON reads the response once, mapping non-expected statuses to typed
// errors and decoding successful bodies into target.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp.StatusCode, bodyBytes)
	}

	if target == nil || len(bodyBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// query builders: zero values are omitted, matching the backend's optional
// query parameters.

func setInt(v url.Values, key string, value int64) {
	if value != 0 {
		v.Set(key, strconv.FormatInt(value, 10))
	}
}

func setStr(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setBool(v url.Values, key string, value *bool) {
	if value != nil {
		v.Set(key, strconv.FormatBool(*value))
	}
}

func setTime(v url.Values, key string, value time.Time) {
	if !value.IsZero() {
		v.Set(key, value.UTC().Format(time.RFC3339))
	}
}

// Paging is embedded in list params; zero values leave paging to the backend
// defaults.
type Paging struct {
	PageNumber int
	PageSize   int
}

func (p Paging) apply(v url.Values) {
	setInt(v, "pageNumber", int64(p.PageNumber))
	setInt(v, "pageSize", int64(p.PageSize))
}

// PagedResult is the backend's standard list envelope.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}
