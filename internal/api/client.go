// Package api is the portal's only gateway to the remote lending
// service. One function per remote operation; every failure is
// normalized into *Error so the page views can display its message
// directly.
package api

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
)

// Error is the uniform failure shape for every remote operation.
// Message is suitable for direct display; callers must not assume any
// structure beyond it.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &Error{Message: "cannot reach the equipment service"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Status: resp.StatusCode, Message: "unexpected response from the equipment service"}
		}
	}
	return nil
}

// decodeError extracts the service's {"error": "..."} body, falling
// back to the bare HTTP status when the body is not in that shape.
func decodeError(resp *http.Response) *Error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			return &Error{Status: resp.StatusCode, Message: body.Error}
		}
		if body.Message != "" {
			return &Error{Status: resp.StatusCode, Message: body.Message}
		}
	}
	return &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("equipment service returned status %d", resp.StatusCode),
	}
}

func pathID(prefix string, id int) string {
	return prefix + "/" + strconv.Itoa(id)
}

func queryInt(key string, v int) string {
	q := url.Values{}
	q.Set(key, strconv.Itoa(v))
	return "?" + q.Encode()
}
