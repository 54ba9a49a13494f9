package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteError คือ error กรณี service ปลายทางตอบกลับด้วย status ที่ไม่ใช่ 2xx
// เก็บ message จาก response body ไว้เพื่อส่งต่อให้ผู้ใช้แบบ verbatim
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote returned %d: %s", e.StatusCode, e.Message)
}

// Client เป็น JSON client สำหรับเรียก service ปลายทาง
type Client struct {
	baseURL string
	hc      *http.Client
}

type RequestOption func(*http.Request)

// WithBearer แนบ credential ไปกับ request ในรูปแบบ Authorization: Bearer <token>
func WithBearer(token string) RequestOption {
	return func(req *http.Request) {
		if len(token) > 0 {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		hc: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any, opts ...RequestOption) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	// อ่าน body มาก่อน เพราะต้องใช้ทั้งกรณี success และ error
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.StatusCode),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// errorMessage พยายามดึงข้อความ error จาก response body ของปลายทาง
// รองรับทั้งรูปแบบ {"error": "..."} และ {"message": "..."}
func errorMessage(raw []byte, statusCode int) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if len(payload.Error) > 0 {
			return payload.Error
		}
		if len(payload.Message) > 0 {
			return payload.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); len(text) > 0 {
		return text
	}
	return http.StatusText(statusCode)
}
