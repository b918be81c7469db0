// Файл: internal/services/auth_test.go
package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"donation-system/internal/authz"
	"donation-system/internal/dto"
	"donation-system/internal/entities"
	"donation-system/pkg/config"
	apperrors "donation-system/pkg/errors"
	"donation-system/pkg/types"
	"donation-system/pkg/utils"
)

// fakeUserRepository держит пользователей в памяти: сервисные тесты
// не должны требовать живой БД.
type fakeUserRepository struct {
	usersByEmail   map[string]*entities.User
	usersByID      map[uint64]*entities.User
	lastLoginCalls int
	updatedHash    string
}

func newFakeUserRepository(users ...*entities.User) *fakeUserRepository {
	repo := &fakeUserRepository{
		usersByEmail: make(map[string]*entities.User),
		usersByID:    make(map[uint64]*entities.User),
	}
	for _, u := range users {
		repo.usersByEmail[u.Email] = u
		repo.usersByID[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return nil, 0, nil
}

func (r *fakeUserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	user, ok := r.usersByID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	return user, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	return user, nil
}

func (r *fakeUserRepository) DeleteUser(ctx context.Context, id uint64) error { return nil }

func (r *fakeUserRepository) UpdatePassword(ctx context.Context, userID uint64, newPasswordHash string) error {
	r.updatedHash = newPasswordHash
	return nil
}

func (r *fakeUserRepository) UpdateLastLogin(ctx context.Context, userID uint64, at time.Time) error {
	r.lastLoginCalls++
	return nil
}

// fakeCacheRepository имитирует Redis без TTL: для логики блокировки
// важны только счетчики и наличие ключей.
type fakeCacheRepository struct {
	values   map[string]string
	counters map[string]int64
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{
		values:   make(map[string]string),
		counters: make(map[string]int64),
	}
}

func (c *fakeCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.values[key] = fmt.Sprint(value)
	return nil
}

func (c *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (c *fakeCacheRepository) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.values, key)
		delete(c.counters, key)
	}
	return nil
}

func (c *fakeCacheRepository) Incr(ctx context.Context, key string) (int64, error) {
	c.counters[key]++
	c.values[key] = fmt.Sprint(c.counters[key])
	return c.counters[key], nil
}

func (c *fakeCacheRepository) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	_, ok := c.values[key]
	return ok, nil
}

const testPassword = "correct-horse-battery"

func newTestAuthService(t *testing.T, users ...*entities.User) (AuthServiceInterface, *fakeUserRepository, *fakeCacheRepository) {
	t.Helper()
	userRepo := newFakeUserRepository(users...)
	cacheRepo := newFakeCacheRepository()
	cfg := &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute * 15}
	return NewAuthService(userRepo, cacheRepo, zap.NewNop(), cfg), userRepo, cacheRepo
}

func activeUser(t *testing.T) *entities.User {
	t.Helper()
	hash, err := utils.HashPassword(testPassword)
	require.NoError(t, err)
	return &entities.User{
		ID:       1,
		Fio:      "Активный Пользователь",
		Email:    "active@donation.local",
		Password: hash,
		Role:     authz.RoleEditor,
		IsActive: true,
	}
}

func TestLogin_Success(t *testing.T) {
	user := activeUser(t)
	svc, userRepo, _ := newTestAuthService(t, user)

	got, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: testPassword})
	require.NoError(t, err)

	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, 1, userRepo.lastLoginCalls)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t, activeUser(t))

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "ghost@donation.local", Password: testPassword})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	user := activeUser(t)
	svc, _, _ := newTestAuthService(t, user)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials,
		"неверный пароль и неизвестный email должны давать одну и ту же ошибку")
}

func TestLogin_InactiveAccount(t *testing.T) {
	user := activeUser(t)
	user.IsActive = false
	svc, _, _ := newTestAuthService(t, user)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: testPassword})
	assert.ErrorIs(t, err, apperrors.ErrAccountInactive)
}

func TestLogin_LockoutAfterMaxAttempts(t *testing.T) {
	user := activeUser(t)
	svc, _, cacheRepo := newTestAuthService(t, user)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, dto.LoginDTO{Email: user.Email, Password: "wrong-password"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// После трех неудач аккаунт заблокирован даже для верного пароля.
	_, err := svc.Login(ctx, dto.LoginDTO{Email: user.Email, Password: testPassword})
	assert.ErrorIs(t, err, apperrors.ErrAccountLocked)
	assert.Contains(t, cacheRepo.values, "lockout:1")
}

func TestLogin_SuccessResetsAttempts(t *testing.T) {
	user := activeUser(t)
	svc, _, cacheRepo := newTestAuthService(t, user)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginDTO{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Contains(t, cacheRepo.values, "login_attempts:1")

	_, err = svc.Login(ctx, dto.LoginDTO{Email: user.Email, Password: testPassword})
	require.NoError(t, err)
	assert.NotContains(t, cacheRepo.values, "login_attempts:1")
}

func TestChangePassword_Success(t *testing.T) {
	user := activeUser(t)
	svc, userRepo, _ := newTestAuthService(t, user)

	err := svc.ChangePassword(context.Background(), user.ID, dto.ChangePasswordDTO{
		CurrentPassword: testPassword,
		NewPassword:     "brand-new-password-1",
	})
	require.NoError(t, err)

	require.NotEmpty(t, userRepo.updatedHash)
	assert.NoError(t, utils.ComparePasswords(userRepo.updatedHash, "brand-new-password-1"))
	assert.NotEqual(t, "brand-new-password-1", userRepo.updatedHash, "пароль не должен сохраняться открытым текстом")
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	user := activeUser(t)
	svc, userRepo, _ := newTestAuthService(t, user)

	err := svc.ChangePassword(context.Background(), user.ID, dto.ChangePasswordDTO{
		CurrentPassword: "wrong-password",
		NewPassword:     "brand-new-password-1",
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Empty(t, userRepo.updatedHash)
}

func TestChangePassword_UnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	err := svc.ChangePassword(context.Background(), 999, dto.ChangePasswordDTO{
		CurrentPassword: testPassword,
		NewPassword:     "brand-new-password-1",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
