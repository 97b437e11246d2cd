package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendahq/tienda/app/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

func newUserDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestUserRepositoryFindByUsername(t *testing.T) {
	repo := NewUserRepository(newUserDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		Identification: "0912345678", Username: "maria", Password: "hash",
	}))

	user, err := repo.FindByUsername(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, "0912345678", user.Identification)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepositoryFindByIdentification(t *testing.T) {
	repo := NewUserRepository(newUserDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		Identification: "0912345678", Username: "maria", Password: "hash",
	}))

	user, err := repo.FindByIdentification(ctx, "0912345678")
	require.NoError(t, err)
	assert.Equal(t, "maria", user.Username)
}

func TestUserRepositoryUpdateAndAll(t *testing.T) {
	repo := NewUserRepository(newUserDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.User{
			Identification: fmt.Sprintf("091234567%d", i),
			Username:       fmt.Sprintf("user%d", i),
			Password:       "hash",
		}))
	}

	user, err := repo.FindByUsername(ctx, "user1")
	require.NoError(t, err)
	user.Password = "rehashed"
	require.NoError(t, repo.Update(ctx, &user))

	again, err := repo.FindByUsername(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, "rehashed", again.Password)

	users, pagination, err := repo.All(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(3), pagination.Total)
	assert.Equal(t, 2, pagination.TotalPages)
}
