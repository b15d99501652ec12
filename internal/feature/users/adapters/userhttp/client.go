// Package userhttp provides an HTTP client for the user-store boundary, for
// deployments where the auth flow runs apart from the relational store and
// reaches it over the /api/users interface.
package userhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"parksarthi_backend/internal/feature/users/domain"
	"parksarthi_backend/internal/feature/users/domain/entity"
)

// Client consumes the "get user by id" and "create user" operations over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client rooted at baseURL (e.g. "https://api.parksarthi.in").
func NewClient(baseURL string, client *http.Client) *Client {
	return &Client{baseURL: baseURL, client: client}
}

// GetUser fetches a user record by subject identifier.
// A 404 response maps to domain.ErrUserNotFound.
func (c *Client) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u := fmt.Sprintf("%s/api/users/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user lookup request failed: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		var user entity.User
		if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
			return nil, fmt.Errorf("decode user response: %w", err)
		}
		return &user, nil
	case http.StatusNotFound:
		return nil, domain.ErrUserNotFound
	default:
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("user lookup: unexpected status %d: %s", res.StatusCode, body)
	}
}

type createUserRequest struct {
	ID          string  `json:"id"`
	PhoneNumber string  `json:"phone_number"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// CreateUser creates a user record with the given attributes.
// A 409 response maps to domain.ErrPhoneAlreadyExists.
func (c *Client) CreateUser(ctx context.Context, id, phoneNumber string, name, email *string) (*entity.User, error) {
	payload, err := json.Marshal(createUserRequest{ID: id, PhoneNumber: phoneNumber, Name: name, Email: email})
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/api/users", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user create request failed: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var user entity.User
		if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
			return nil, fmt.Errorf("decode user response: %w", err)
		}
		return &user, nil
	case http.StatusConflict:
		return nil, domain.ErrPhoneAlreadyExists
	default:
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("user create: unexpected status %d: %s", res.StatusCode, body)
	}
}

// EnsureUser implements the lazy-provisioning check over the HTTP boundary:
// only a not-found lookup triggers creation.
func (c *Client) EnsureUser(ctx context.Context, id, phoneNumber, name, email string) (*entity.User, error) {
	user, err := c.GetUser(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	var n, e *string
	if name != "" {
		n = &name
	}
	if email != "" {
		e = &email
	}
	return c.CreateUser(ctx, id, phoneNumber, n, e)
}
