package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"parksarthi_backend/internal/feature/documents/domain/entity"
	"parksarthi_backend/internal/feature/documents/usecase"
	jwtmw "parksarthi_backend/internal/platform/jwt"
)

// mockDocumentUsecase is a mock implementation of the DocumentUsecase interface.
type mockDocumentUsecase struct {
	AddFunc        func(ctx context.Context, in usecase.AddInput) (*entity.Document, string, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]entity.Document, error)
}

func (m *mockDocumentUsecase) Add(ctx context.Context, in usecase.AddInput) (*entity.Document, string, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, in)
	}
	return &entity.Document{ID: "d1", UserID: in.UserID, Type: in.Type, IsValid: true}, "", nil
}

func (m *mockDocumentUsecase) ListByUser(ctx context.Context, userID string) ([]entity.Document, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []entity.Document{{ID: "d1", UserID: userID, Type: entity.TypeLicense}}, nil
}

func setupRouter(uc DocumentUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDocumentHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(jwtmw.ContextUserID, "u1") })
	r.POST("/api/documents", h.Add)
	r.GET("/api/documents", h.List)
	r.GET("/api/service-history", h.ServiceHistory)
	return r
}

func TestDocumentHandler_Add(t *testing.T) {
	t.Run("files a document with a decoded image", func(t *testing.T) {
		var gotInput usecase.AddInput
		uc := &mockDocumentUsecase{
			AddFunc: func(ctx context.Context, in usecase.AddInput) (*entity.Document, string, error) {
				gotInput = in
				return &entity.Document{ID: "d1"}, "MP09 1234", nil
			},
		}
		r := setupRouter(uc)

		body, _ := json.Marshal(gin.H{
			"type":      "rc",
			"file_name": "rc.jpg",
			"file_url":  "https://files.example.com/rc.jpg",
			"image":     base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8}),
		})
		req, _ := http.NewRequest(http.MethodPost, "/api/documents", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "u1", gotInput.UserID)
		assert.Equal(t, []byte{0xFF, 0xD8}, gotInput.Image)
		assert.Contains(t, w.Body.String(), "scanned_text")
	})

	t.Run("unknown type is rejected by binding", func(t *testing.T) {
		r := setupRouter(&mockDocumentUsecase{})

		body, _ := json.Marshal(gin.H{
			"type":      "passport",
			"file_name": "p.jpg",
			"file_url":  "https://files.example.com/p.jpg",
		})
		req, _ := http.NewRequest(http.MethodPost, "/api/documents", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("corrupt image encoding is rejected", func(t *testing.T) {
		r := setupRouter(&mockDocumentUsecase{})

		body, _ := json.Marshal(gin.H{
			"type":      "rc",
			"file_name": "rc.jpg",
			"file_url":  "https://files.example.com/rc.jpg",
			"image":     "%%%not-base64%%%",
		})
		req, _ := http.NewRequest(http.MethodPost, "/api/documents", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDocumentHandler_List(t *testing.T) {
	r := setupRouter(&mockDocumentUsecase{})

	req, _ := http.NewRequest(http.MethodGet, "/api/documents", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "license")
}

func TestDocumentHandler_ServiceHistory(t *testing.T) {
	r := setupRouter(&mockDocumentUsecase{})

	req, _ := http.NewRequest(http.MethodGet, "/api/service-history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var records []usecase.ServiceRecord
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 4)
}
