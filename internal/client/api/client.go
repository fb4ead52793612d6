// Package api is a typed client for the devconnector REST API.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultAuthHeader = "jwtToken"

type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// Error is a non-2xx answer from the API.
type Error struct {
	Status int
	Msg    string
	Errors []FieldError
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Msg)
}

// Messages lists the field messages, or the top-level message when there are none.
func (e *Error) Messages() []string {
	if len(e.Errors) == 0 {
		return []string{e.Msg}
	}
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Msg
	}
	return msgs
}

type errorBody struct {
	Msg    string       `json:"msg"`
	Errors []FieldError `json:"errors"`
}

type Option func(*Client)

func WithAuthHeader(name string) Option {
	return func(c *Client) { c.authHeader = name }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// Client is safe for concurrent use.
type Client struct {
	http       *resty.Client
	authHeader string

	mu    sync.RWMutex
	token string
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(strings.TrimSuffix(baseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetTimeout(15 * time.Second),
		authHeader: DefaultAuthHeader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken attaches token to every following request. An empty token
// stops sending the header.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.http.R().SetContext(ctx).SetError(&errorBody{})
	if token := c.Token(); token != "" {
		req.SetHeader(c.authHeader, token)
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &Error{Status: resp.StatusCode()}
	if eb, ok := resp.Error().(*errorBody); ok {
		apiErr.Msg = eb.Msg
		apiErr.Errors = eb.Errors
	}
	if apiErr.Msg == "" {
		apiErr.Msg = http.StatusText(resp.StatusCode())
	}
	return apiErr
}

type tokenResponse struct {
	Token string `json:"token"`
}

type message struct {
	Msg string `json:"msg"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var out tokenResponse
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/user", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/auth", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) MyProfile(ctx context.Context) (*Profile, error) {
	return c.profile(ctx, http.MethodGet, "/api/profile/me", nil)
}

func (c *Client) Profiles(ctx context.Context) ([]Profile, error) {
	var out []Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProfileByUser(ctx context.Context, userID string) (*Profile, error) {
	return c.profile(ctx, http.MethodGet, "/api/profile/user/"+userID, nil)
}

func (c *Client) UpsertProfile(ctx context.Context, form ProfileForm) (*Profile, error) {
	return c.profile(ctx, http.MethodPost, "/api/profile", form)
}

// DeleteAccount removes the caller's profile and user.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/profile", nil, &message{})
}

func (c *Client) AddExperience(ctx context.Context, form ExperienceForm) (*Profile, error) {
	return c.profile(ctx, http.MethodPut, "/api/profile/experience", form)
}

func (c *Client) DeleteExperience(ctx context.Context, id string) (*Profile, error) {
	return c.profile(ctx, http.MethodDelete, "/api/profile/experience/"+id, nil)
}

func (c *Client) AddEducation(ctx context.Context, form EducationForm) (*Profile, error) {
	return c.profile(ctx, http.MethodPut, "/api/profile/education", form)
}

func (c *Client) DeleteEducation(ctx context.Context, id string) (*Profile, error) {
	return c.profile(ctx, http.MethodDelete, "/api/profile/education/"+id, nil)
}

func (c *Client) profile(ctx context.Context, method, path string, body any) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, method, path, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) Posts(ctx context.Context) ([]Post, error) {
	var out []Post
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Post(ctx context.Context, id string) (*Post, error) {
	var p Post
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePost(ctx context.Context, text string) (*Post, error) {
	var p Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", map[string]string{"text": text}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/posts/"+id, nil, &message{})
}

func (c *Client) Like(ctx context.Context, postID string) ([]Like, error) {
	return c.likes(ctx, "/api/posts/like/"+postID)
}

func (c *Client) Unlike(ctx context.Context, postID string) ([]Like, error) {
	return c.likes(ctx, "/api/posts/unlike/"+postID)
}

func (c *Client) likes(ctx context.Context, path string) ([]Like, error) {
	var out []Like
	if err := c.do(ctx, http.MethodPut, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddComment(ctx context.Context, postID, text string) ([]Comment, error) {
	var out []Comment
	if err := c.do(ctx, http.MethodPost, "/api/posts/comment/"+postID, map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) ([]Comment, error) {
	var out []Comment
	if err := c.do(ctx, http.MethodDelete, "/api/posts/comment/"+postID+"/"+commentID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
