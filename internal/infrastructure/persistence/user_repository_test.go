package persistence

import (
	"context"
	"testing"

	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{})
	require.NoError(t, err)

	return db
}

func newPersistedUser(t *testing.T, repo *GormUserRepository, email string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Carlos Medina", email, "clave-segura", role)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGormUserRepository_CreateAndFindByEmail(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newPersistedUser(t, repo, "carlos@eps.example.com", identity.RoleUserEPS)

	t.Run("exact email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "carlos@eps.example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, identity.RoleUserEPS, found.Role)
	})

	t.Run("case insensitive lookup", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "CARLOS@EPS.Example.Com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nadie@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	newPersistedUser(t, repo, "admin@glosas.example.com", identity.RoleAdmin)

	exists, err := repo.ExistsByEmail(ctx, "admin@glosas.example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "otro@glosas.example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_UpdateAndDelete(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user := newPersistedUser(t, repo, "auditor@ips.example.com", identity.RoleAuditorIPS)

	require.NoError(t, user.SetRole(identity.RoleManagerIPS))
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, identity.RoleManagerIPS, found.Role)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
}

func TestGormUserRepository_FindAll(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	newPersistedUser(t, repo, "a@example.com", identity.RoleAdmin)
	newPersistedUser(t, repo, "b@example.com", identity.RoleAuditorEPS)
	newPersistedUser(t, repo, "c@example.com", identity.RoleBillerIPS)

	users, total, err := repo.FindAll(ctx, shared.Filter{Offset: 0, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)
}
