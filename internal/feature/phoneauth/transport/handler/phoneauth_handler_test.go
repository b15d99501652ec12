package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"parksarthi_backend/internal/feature/phoneauth/domain"
	"parksarthi_backend/internal/feature/phoneauth/domain/entity"
)

// mockIssuer is a mock implementation of the usecase.ChallengeIssuer interface.
type mockIssuer struct {
	RequestChallengeFunc func(ctx context.Context, phoneNumber, botToken string) (string, error)
	ConfirmChallengeFunc func(ctx context.Context, handle, code string) (*entity.AuthSession, error)

	requestCalls int
}

func (m *mockIssuer) RequestChallenge(ctx context.Context, phoneNumber, botToken string) (string, error) {
	m.requestCalls++
	if m.RequestChallengeFunc != nil {
		return m.RequestChallengeFunc(ctx, phoneNumber, botToken)
	}
	return "handle-1", nil
}

func (m *mockIssuer) ConfirmChallenge(ctx context.Context, handle, code string) (*entity.AuthSession, error) {
	if m.ConfirmChallengeFunc != nil {
		return m.ConfirmChallengeFunc(ctx, handle, code)
	}
	return &entity.AuthSession{UID: "u1", PhoneNumber: "+919876543210"}, nil
}

// mockStore is an in-memory mock of the ChallengeStore interface.
type mockStore struct {
	challenges map[string]*entity.PendingChallenge
}

func newMockStore() *mockStore {
	return &mockStore{challenges: map[string]*entity.PendingChallenge{}}
}

func (m *mockStore) Save(ctx context.Context, id string, ch *entity.PendingChallenge) error {
	m.challenges[id] = ch
	return nil
}

func (m *mockStore) Find(ctx context.Context, id string) (*entity.PendingChallenge, error) {
	ch, ok := m.challenges[id]
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	return ch, nil
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	delete(m.challenges, id)
	return nil
}

// mockTokens is a mock implementation of the TokenGenerator interface.
type mockTokens struct{}

func (mockTokens) GenerateToken(uid, phoneNumber string) (string, error) {
	return "jwt-" + uid, nil
}

func setupRouter(h *PhoneAuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/phone", h.SendOTP)
	r.POST("/auth/verify", h.VerifyOTP)
	return r
}

func postJSON(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPhoneAuthHandler_SendOTP(t *testing.T) {
	t.Run("short number never reaches the provider", func(t *testing.T) {
		issuer := &mockIssuer{}
		h := NewPhoneAuthHandler(issuer, newMockStore(), mockTokens{}, nil)

		w := postJSON(setupRouter(h), "/auth/phone", gin.H{
			"phone_number": "98765432", "recaptcha_token": "tok",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, issuer.requestCalls)
	})

	t.Run("valid number returns a challenge id", func(t *testing.T) {
		issuer := &mockIssuer{
			RequestChallengeFunc: func(ctx context.Context, phoneNumber, botToken string) (string, error) {
				assert.Equal(t, "+919876543210", phoneNumber)
				return "handle-1", nil
			},
		}
		store := newMockStore()
		h := NewPhoneAuthHandler(issuer, store, mockTokens{}, nil)

		w := postJSON(setupRouter(h), "/auth/phone", gin.H{
			"phone_number": "9876543210", "recaptcha_token": "tok",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		ch, err := store.Find(context.Background(), resp["challenge_id"])
		assert.NoError(t, err)
		assert.Equal(t, "handle-1", ch.Handle)
	})

	t.Run("rate limited maps to 429", func(t *testing.T) {
		issuer := &mockIssuer{
			RequestChallengeFunc: func(ctx context.Context, phoneNumber, botToken string) (string, error) {
				return "", domain.ErrRateLimited
			},
		}
		h := NewPhoneAuthHandler(issuer, newMockStore(), mockTokens{}, nil)

		w := postJSON(setupRouter(h), "/auth/phone", gin.H{
			"phone_number": "9876543210", "recaptcha_token": "tok",
		})

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestPhoneAuthHandler_VerifyOTP(t *testing.T) {
	seedChallenge := func(store *mockStore) {
		store.challenges["id-1"] = &entity.PendingChallenge{Handle: "handle-1", PhoneNumber: "+919876543210"}
	}

	t.Run("successful verification issues a token and publishes the session", func(t *testing.T) {
		var published *entity.AuthSession
		store := newMockStore()
		seedChallenge(store)
		h := NewPhoneAuthHandler(&mockIssuer{}, store, mockTokens{}, func(s *entity.AuthSession) { published = s })

		w := postJSON(setupRouter(h), "/auth/verify", gin.H{
			"challenge_id": "id-1", "code": "123456",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jwt-u1")
		assert.NotNil(t, published)
		// Consumed exactly once.
		_, err := store.Find(context.Background(), "id-1")
		assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
	})

	t.Run("wrong code keeps the challenge for retry", func(t *testing.T) {
		store := newMockStore()
		seedChallenge(store)
		issuer := &mockIssuer{
			ConfirmChallengeFunc: func(ctx context.Context, handle, code string) (*entity.AuthSession, error) {
				return nil, domain.ErrInvalidCode
			},
		}
		h := NewPhoneAuthHandler(issuer, store, mockTokens{}, nil)

		w := postJSON(setupRouter(h), "/auth/verify", gin.H{
			"challenge_id": "id-1", "code": "000000",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		_, err := store.Find(context.Background(), "id-1")
		assert.NoError(t, err, "challenge must be retained")
	})

	t.Run("expired challenge maps to 410 and is discarded", func(t *testing.T) {
		store := newMockStore()
		seedChallenge(store)
		issuer := &mockIssuer{
			ConfirmChallengeFunc: func(ctx context.Context, handle, code string) (*entity.AuthSession, error) {
				return nil, domain.ErrCodeExpired
			},
		}
		h := NewPhoneAuthHandler(issuer, store, mockTokens{}, nil)

		w := postJSON(setupRouter(h), "/auth/verify", gin.H{
			"challenge_id": "id-1", "code": "123456",
		})

		assert.Equal(t, http.StatusGone, w.Code)
		_, err := store.Find(context.Background(), "id-1")
		assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
	})

	t.Run("short code is rejected by binding", func(t *testing.T) {
		h := NewPhoneAuthHandler(&mockIssuer{}, newMockStore(), mockTokens{}, nil)

		w := postJSON(setupRouter(h), "/auth/verify", gin.H{
			"challenge_id": "id-1", "code": "1234",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown challenge id maps to 404", func(t *testing.T) {
		h := NewPhoneAuthHandler(&mockIssuer{}, newMockStore(), mockTokens{}, nil)

		w := postJSON(setupRouter(h), "/auth/verify", gin.H{
			"challenge_id": "missing", "code": "123456",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
