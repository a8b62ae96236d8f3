// Package httpapi は応募 API のエンベロープ形式を扱う HTTP クライアントを提供する。
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	admindomain "github.com/hireline/job-application-services/api/internal/admin/domain"
	applicantapp "github.com/hireline/job-application-services/api/internal/applicant/application"
)

// Config carries client settings.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client talks to the applications API. It serves both the form (submit)
// and the review dashboard (list, status, delete).
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// New builds a client. The base URL is the server root, e.g.
// "http://localhost:8080".
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Submit posts a finished multipart application payload.
func (c *Client) Submit(ctx context.Context, payload *applicantapp.Payload) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/applications", bytes.NewReader(payload.Body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", payload.ContentType)

	_, err = c.do(req)
	return err
}

// List fetches every stored application.
func (c *Client) List(ctx context.Context) ([]admindomain.SubmissionRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/applications", nil)
	if err != nil {
		return nil, err
	}

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	records := make([]admindomain.SubmissionRecord, 0)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode application list: %w", err)
		}
	}
	return records, nil
}

// UpdateStatus changes one application's triage status.
func (c *Client) UpdateStatus(ctx context.Context, id string, status admindomain.Status) error {
	body, err := json.Marshal(map[string]string{"status": status.String()})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		c.baseURL+"/api/applications/"+id+"/status", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// Delete removes one application.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/api/applications/"+id, nil)
	if err != nil {
		return err
	}

	_, err = c.do(req)
	return err
}

// do runs the request and unwraps the {success, data, message} envelope.
// A failed envelope surfaces the server's message as the error text.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("API 呼び出しに失敗: %s %s: %v", req.Method, req.URL.Path, err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d)", resp.StatusCode)
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return nil, errors.New(message)
	}
	return env.Data, nil
}
