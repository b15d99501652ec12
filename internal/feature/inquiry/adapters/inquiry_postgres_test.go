package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parksarthi_backend/internal/feature/inquiry/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.BusinessInquiry{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestInquiryPostgres_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInquiryPostgres(db)
	ctx := context.Background()

	inq := &entity.BusinessInquiry{
		LookingFor: "parking management",
		FullName:   "Ravi Sharma",
		Email:      "ravi@example.com",
		Mobile:     "+919876543210",
		City:       "Indore",
		Status:     entity.StatusPending,
	}
	require.NoError(t, repo.Create(ctx, inq))
	assert.NotEmpty(t, inq.ID)

	resolved := &entity.BusinessInquiry{
		LookingFor: "valet services",
		FullName:   "Asha Verma",
		Email:      "asha@example.com",
		Mobile:     "+911234567890",
		City:       "Bhopal",
		Status:     entity.StatusResolved,
	}
	require.NoError(t, repo.Create(ctx, resolved))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := repo.List(ctx, entity.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Ravi Sharma", pending[0].FullName)
}
