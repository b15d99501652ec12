package identitytoolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"parksarthi_backend/internal/feature/phoneauth/domain"
	"parksarthi_backend/internal/feature/phoneauth/domain/entity"
	"parksarthi_backend/internal/feature/phoneauth/usecase"
	"parksarthi_backend/internal/shared/ratelimiter"
)

// Client implements usecase.ChallengeIssuer against the Identity Toolkit API.
// The provider's sessionInfo value doubles as the opaque challenge handle.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check that Client implements ChallengeIssuer.
var _ usecase.ChallengeIssuer = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP client.
// limiter bounds the call rate against the provider; it may be nil.
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

type sendCodeRequest struct {
	PhoneNumber    string `json:"phoneNumber"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type sendCodeResponse struct {
	SessionInfo string `json:"sessionInfo"`
}

type signInRequest struct {
	SessionInfo string `json:"sessionInfo"`
	Code        string `json:"code"`
}

type signInResponse struct {
	LocalID     string `json:"localId"`
	PhoneNumber string `json:"phoneNumber"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// RequestChallenge asks the provider to send an OTP to phoneNumber, bound to
// the given bot-verification token, and returns the sessionInfo handle.
func (c *Client) RequestChallenge(ctx context.Context, phoneNumber, botToken string) (string, error) {
	var resp sendCodeResponse
	err := c.post(ctx, "accounts:sendVerificationCode",
		sendCodeRequest{PhoneNumber: phoneNumber, RecaptchaToken: botToken}, &resp)
	if err != nil {
		return "", err
	}
	if resp.SessionInfo == "" {
		return "", fmt.Errorf("identity toolkit returned empty sessionInfo")
	}
	return resp.SessionInfo, nil
}

// ConfirmChallenge submits the code against a sessionInfo handle and returns
// the established session on success.
func (c *Client) ConfirmChallenge(ctx context.Context, handle, code string) (*entity.AuthSession, error) {
	var resp signInResponse
	err := c.post(ctx, "accounts:signInWithPhoneNumber",
		signInRequest{SessionInfo: handle, Code: code}, &resp)
	if err != nil {
		return nil, err
	}
	return &entity.AuthSession{
		UID:         resp.LocalID,
		PhoneNumber: resp.PhoneNumber,
		Name:        resp.DisplayName,
		Email:       resp.Email,
	}, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/%s?key=%s", c.cfg.BaseURL, endpoint, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity toolkit request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return mapAPIError(data, res.StatusCode)
	}
	return json.Unmarshal(data, out)
}

// mapAPIError converts an Identity Toolkit error body into a domain sentinel.
// The provider encodes the cause in the error message field, sometimes with a
// trailing detail after " : ".
func mapAPIError(body []byte, status int) error {
	var er errorResponse
	_ = json.Unmarshal(body, &er)
	msg, _, _ := strings.Cut(er.Error.Message, " ")

	switch msg {
	case "INVALID_PHONE_NUMBER", "MISSING_PHONE_NUMBER":
		return domain.ErrInvalidNumber
	case "TOO_MANY_ATTEMPTS_TRY_LATER", "QUOTA_EXCEEDED":
		return domain.ErrRateLimited
	case "INVALID_CODE", "MISSING_CODE":
		return domain.ErrInvalidCode
	case "SESSION_EXPIRED", "CODE_EXPIRED":
		return domain.ErrCodeExpired
	case "INVALID_SESSION_INFO", "MISSING_SESSION_INFO":
		return domain.ErrChallengeNotFound
	}
	if er.Error.Message != "" {
		return fmt.Errorf("identity toolkit error: %s", er.Error.Message)
	}
	return fmt.Errorf("identity toolkit error: status %d", status)
}
