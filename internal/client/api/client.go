// Package api is the client's single outbound HTTP gateway to the CareerMate
// backend. All requests flow through one transport that attaches the stored
// access token and transparently recovers from expired tokens with a single
// refresh-and-retry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arkadym/careermate/internal/client/models"
	"github.com/arkadym/careermate/internal/client/storage"
	"github.com/arkadym/careermate/internal/logging"
)

// Service is the backend surface the rest of the client consumes.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	AdminSummary(ctx context.Context) (*models.AdminSummary, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	Attendance(ctx context.Context) ([]models.AttendanceRecord, error)
	MarkAttendance(ctx context.Context, status string) (*models.AttendanceRecord, error)
	Resume(ctx context.Context) (*models.FileRef, error)
	UploadResume(ctx context.Context, filename string, data []byte) (any, error)
	Image(ctx context.Context) (*models.FileRef, error)
	UploadImage(ctx context.Context, filename string, data []byte) (*models.FileRef, error)
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

// Client talks to the backend over REST/JSON.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// Options configures NewClient.
type Options struct {
	BaseURL string
	Store   storage.Store
	Timeout time.Duration
	Logger  logging.Logger

	// OnSessionExpired runs after an unrecoverable authorization failure,
	// once local credentials have been wiped.
	OnSessionExpired func()
}

// RefreshPath is the dedicated token refresh endpoint. Requests to it bypass
// the auth transport.
const RefreshPath = "/users/token/refresh/"

// NewClient builds the gateway with its auth transport installed.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")

	transport := &authTransport{
		base:       http.DefaultTransport,
		store:      opts.Store,
		refreshURL: base + RefreshPath,
		bare:       &http.Client{Timeout: opts.Timeout},
		onExpired:  opts.OnSessionExpired,
		log:        opts.Logger.With("component", "api"),
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Transport: transport, Timeout: opts.Timeout},
		log:     opts.Logger.With("component", "api"),
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login/", body, &resp); err != nil {
		return nil, err
	}
	if resp.Access == "" || resp.User == nil {
		return nil, fmt.Errorf("malformed login response")
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/register/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AdminSummary(ctx context.Context) (*models.AdminSummary, error) {
	var resp models.AdminSummary
	if err := c.do(ctx, http.MethodGet, "/admin-aggregated/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.do(ctx, http.MethodGet, "/api/opportunities/jobs/", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	var created models.Job
	if err := c.do(ctx, http.MethodPost, "/api/opportunities/jobs/", job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/api/opportunities/courses/", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	var created models.Course
	if err := c.do(ctx, http.MethodPost, "/api/opportunities/courses/", course, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) Attendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := c.do(ctx, http.MethodGet, "/api/mark-attendance/", nil, &records)
	if errors.Is(err, ErrNotFound) {
		// the backend answers 404 when no records exist yet
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) MarkAttendance(ctx context.Context, status string) (*models.AttendanceRecord, error) {
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return nil, fmt.Errorf("invalid attendance status %q", status)
	}
	var record models.AttendanceRecord
	req := models.MarkAttendanceRequest{Status: status}
	if err := c.do(ctx, http.MethodPost, "/api/mark-attendance/", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) Resume(ctx context.Context) (*models.FileRef, error) {
	var ref models.FileRef
	if err := c.do(ctx, http.MethodGet, "/api/user/resume/", nil, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

// UploadResume sends the resume as multipart form data. The backend scans it
// for known skills and answers with the user's updated raw skills value.
func (c *Client) UploadResume(ctx context.Context, filename string, data []byte) (any, error) {
	var resp struct {
		Skills any `json:"skills"`
	}
	if err := c.doMultipart(ctx, "/api/user/resume/", "resume", filename, data, &resp); err != nil {
		return nil, err
	}
	return resp.Skills, nil
}

func (c *Client) Image(ctx context.Context) (*models.FileRef, error) {
	var ref models.FileRef
	if err := c.do(ctx, http.MethodGet, "/api/user/image/", nil, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (*models.FileRef, error) {
	var ref models.FileRef
	if err := c.doMultipart(ctx, "/api/user/image/", "image", filename, data, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}

func (c *Client) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	var resp models.ChatResponse
	req := models.ChatRequest{Prompt: prompt}
	if err := c.do(ctx, http.MethodPost, "/api/llm-genAi/", req, &resp); err != nil {
		return "", err
	}
	return resp.Output, nil
}

// do issues a JSON request through the intercepted client and decodes the
// response into out (when out is non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) doMultipart(ctx context.Context, path, field, filename string, data []byte, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// mapError translates transport-level failures. Session expiry surfaces
// as-is; everything else is a network problem the caller shows locally.
func (c *Client) mapError(err error) error {
	if errors.Is(err, ErrSessionExpired) {
		return ErrSessionExpired
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, urlErr.Err)
	}
	return err
}

func (c *Client) mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("api error: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
}
