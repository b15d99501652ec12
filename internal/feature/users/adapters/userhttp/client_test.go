package userhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"parksarthi_backend/internal/feature/users/domain"
	"parksarthi_backend/internal/feature/users/domain/entity"
)

func TestClient_GetUser(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/u1":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(entity.User{ID: "u1", PhoneNumber: "+919876543210", Level: 1})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	user, err := client.GetUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.PhoneNumber != "+919876543210" {
		t.Errorf("unexpected user: %+v", user)
	}

	_, err = client.GetUser(context.Background(), "missing")
	if err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestClient_EnsureUser_CreatesOnceOnNotFound(t *testing.T) {
	t.Parallel()

	var created atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			if created.Load() > 0 {
				// A second observation finds the record.
				_ = json.NewEncoder(w).Encode(entity.User{ID: "u1", PhoneNumber: "+919876543210"})
				return
			}
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPost && r.URL.Path == "/api/users":
			created.Add(1)
			var req createUserRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode create request: %v", err)
			}
			if req.ID != "u1" || req.PhoneNumber != "+919876543210" {
				t.Errorf("unexpected create payload: %+v", req)
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(entity.User{ID: req.ID, PhoneNumber: req.PhoneNumber})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	ctx := context.Background()

	// First observation: lookup misses, exactly one create is issued.
	if _, err := client.EnsureUser(ctx, "u1", "+919876543210", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second observation (page reload): found, no duplicate create.
	if _, err := client.EnsureUser(ctx, "u1", "+919876543210", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := created.Load(); got != 1 {
		t.Errorf("expected exactly one create call, got %d", got)
	}
}

func TestClient_CreateUser_Conflict(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())

	_, err := client.CreateUser(context.Background(), "u1", "+919876543210", nil, nil)
	if err != domain.ErrPhoneAlreadyExists {
		t.Errorf("expected ErrPhoneAlreadyExists, got %v", err)
	}
}
