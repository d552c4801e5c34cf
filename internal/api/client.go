// Package api is the REST client for the campus-services backend. Every
// response is a JSON envelope {success, data, message}; authenticated
// requests carry a bearer token read from the session provider.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"campus-services-client/internal/model"
	"campus-services-client/internal/session"
)

type Client struct {
	base    string
	eps     Endpoints
	http    *http.Client
	session session.Provider
	lim     *rate.Limiter
	log     *zap.Logger
}

// New builds a client for the backend at baseURL (e.g.
// "http://localhost:3000/api"). The session provider is consulted before
// every authenticated request and cleared when the server reports an invalid
// token.
func New(baseURL string, eps Endpoints, sess session.Provider, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base: baseURL,
		eps:  eps,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: http.DefaultTransport, session: sess},
		},
		session: sess,
		// bounds re-fetch loops; generous enough to never bite a human
		lim: rate.NewLimiter(rate.Limit(10), 20),
		log: log,
	}
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// do issues one request and unwraps the envelope. It returns the envelope
// message alongside the data because a few flows (forgot-password) surface
// it on success too. No retries anywhere: every failure goes to the user.
func do[T any](ctx context.Context, c *Client, method, path string, body any, authed bool) (T, string, error) {
	var zero T

	if authed {
		if _, err := c.session.Token(); err != nil {
			return zero, "", ErrNoSession
		}
	}
	if err := c.lim.Wait(ctx); err != nil {
		return zero, "", err
	}

	var buf *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, "", err
		}
		buf = bytes.NewReader(b)
	} else {
		buf = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, buf)
	if err != nil {
		return zero, "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.New().String()[:8]
	c.log.Debug("api request", zap.String("id", reqID), zap.String("method", method), zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, "", fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// invalid token: drop it and force re-login
		_ = c.session.Clear()
		c.log.Debug("api unauthenticated", zap.String("id", reqID))
		return zero, "", ErrUnauthenticated
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, "", fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallbackMessage
		}
		c.log.Debug("api rejected", zap.String("id", reqID), zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return zero, env.Message, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return env.Data, env.Message, nil
}

// ----- auth -----

type LoginData struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (model.User, error) {
	body := map[string]string{"email": email, "password": password}
	data, _, err := do[LoginData](ctx, c, http.MethodPost, c.eps.Auth+"/login", body, false)
	if err != nil {
		return model.User{}, err
	}
	if data.Token != "" {
		if err := c.session.SetToken(data.Token); err != nil {
			return model.User{}, err
		}
	}
	return data.User, nil
}

type RegisterRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	_, _, err := do[json.RawMessage](ctx, c, http.MethodPost, c.eps.Auth+"/register", req, false)
	return err
}

type ForgotPasswordData struct {
	// ResetToken is only populated in development setups where the reset
	// email could not be sent.
	ResetToken string `json:"resetToken"`
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (ForgotPasswordData, string, error) {
	body := map[string]string{"email": email}
	return do[ForgotPasswordData](ctx, c, http.MethodPost, c.eps.Auth+"/forgot-password", body, false)
}

type ResetPasswordData struct {
	Token string `json:"token"`
}

// ResetPassword redeems a reset token; on success the backend may log the
// user straight in, in which case the new token is stored.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) error {
	body := map[string]string{"resetToken": resetToken, "password": password}
	data, _, err := do[ResetPasswordData](ctx, c, http.MethodPost, c.eps.Auth+"/reset-password", body, false)
	if err != nil {
		return err
	}
	if data.Token != "" {
		return c.session.SetToken(data.Token)
	}
	return nil
}

// Me fetches the current-user profile, the only authoritative role source.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	u, _, err := do[model.User](ctx, c, http.MethodGet, c.eps.Auth+"/me", nil, true)
	return u, err
}

func (c *Client) Logout() error {
	return c.session.Clear()
}

// ----- faculty -----

func (c *Client) ListFaculty(ctx context.Context) ([]model.Faculty, error) {
	fs, _, err := do[[]model.Faculty](ctx, c, http.MethodGet, c.eps.Faculty, nil, true)
	return fs, err
}

func (c *Client) GetFaculty(ctx context.Context, id string) (model.Faculty, error) {
	f, _, err := do[model.Faculty](ctx, c, http.MethodGet, c.eps.Faculty+"/"+id, nil, true)
	return f, err
}

// ----- appointments -----

func (c *Client) MyAppointments(ctx context.Context) ([]model.Appointment, error) {
	as, _, err := do[[]model.Appointment](ctx, c, http.MethodGet, c.eps.Appointments+"/my-appointments", nil, true)
	return as, err
}

// ListAppointments fetches every appointment; the backend only honours this
// for admin accounts.
func (c *Client) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	as, _, err := do[[]model.Appointment](ctx, c, http.MethodGet, c.eps.Appointments, nil, true)
	return as, err
}

func (c *Client) GetAppointment(ctx context.Context, id string) (model.Appointment, error) {
	a, _, err := do[model.Appointment](ctx, c, http.MethodGet, c.eps.Appointments+"/"+id, nil, true)
	return a, err
}

type BookingRequest struct {
	FacultyID string `json:"facultyId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Duration  int    `json:"duration"`
	Reason    string `json:"reason"`
}

func (c *Client) CreateAppointment(ctx context.Context, req BookingRequest) (model.Appointment, error) {
	a, _, err := do[model.Appointment](ctx, c, http.MethodPost, c.eps.Appointments, req, true)
	return a, err
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus) (model.Appointment, error) {
	body := map[string]model.AppointmentStatus{"status": status}
	a, _, err := do[model.Appointment](ctx, c, http.MethodPut, c.eps.Appointments+"/"+id+"/status", body, true)
	return a, err
}

// ----- complaints -----

func (c *Client) MyComplaints(ctx context.Context) ([]model.Complaint, error) {
	cs, _, err := do[[]model.Complaint](ctx, c, http.MethodGet, c.eps.Complaints+"/my-complaints", nil, true)
	return cs, err
}

func (c *Client) ListComplaints(ctx context.Context) ([]model.Complaint, error) {
	cs, _, err := do[[]model.Complaint](ctx, c, http.MethodGet, c.eps.Complaints, nil, true)
	return cs, err
}

func (c *Client) GetComplaint(ctx context.Context, id string) (model.Complaint, error) {
	cm, _, err := do[model.Complaint](ctx, c, http.MethodGet, c.eps.Complaints+"/"+id, nil, true)
	return cm, err
}

type ComplaintRequest struct {
	Type        model.ComplaintType `json:"type"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Location    string              `json:"location"`
	Building    string              `json:"building,omitempty"`
	Floor       string              `json:"floor,omitempty"`
	Priority    model.Priority      `json:"priority"`
}

func (c *Client) CreateComplaint(ctx context.Context, req ComplaintRequest) (model.Complaint, error) {
	cm, _, err := do[model.Complaint](ctx, c, http.MethodPost, c.eps.Complaints, req, true)
	return cm, err
}

func (c *Client) UpdateComplaintStatus(ctx context.Context, id string, status model.ComplaintStatus) (model.Complaint, error) {
	body := map[string]model.ComplaintStatus{"status": status}
	cm, _, err := do[model.Complaint](ctx, c, http.MethodPut, c.eps.Complaints+"/"+id+"/status", body, true)
	return cm, err
}

// ----- health -----

func (c *Client) Health(ctx context.Context) error {
	_, _, err := do[json.RawMessage](ctx, c, http.MethodGet, c.eps.Health, nil, false)
	return err
}
