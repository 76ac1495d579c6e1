package auth

import (
	"context"
	"testing"

	"github.com/qutubkothari/sak-erp-inventory/internal/application/dto"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmailAndTenant(_ context.Context, email, tenantID string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok || u.TenantID != tenantID {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(repo *fakeUserRepo) *AuthUseCase {
	return NewAuthUseCase(repo, JWTConfig{
		Secret:     "unit-test-secret",
		ExpMinutes: 60,
		Issuer:     "sak-erp-inventory-test",
	})
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		TenantID: "tenant-1",
		Email:    "keeper@example.com",
		Password: "s3cret-pass",
		Name:     "Main Storekeeper",
		Role:     entity.RoleStorekeeper,
	}
}

func TestRegisterUser_HashesPasswordAndDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	resp, err := uc.RegisterUser(ctx, registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "keeper@example.com", resp.Email)
	assert.Equal(t, entity.RoleStorekeeper, resp.Role)
	assert.Equal(t, "active", resp.Status)

	stored := repo.users["keeper@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash, "password must never be stored in clear")

	// Omitted role falls back to sales.
	in := registerRequest()
	in.Email = "rep@example.com"
	in.Role = ""
	resp, err = uc.RegisterUser(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSales, resp.Role)
}

func TestRegisterUser_DuplicateEmailWithinTenant(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, registerRequest())
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_Validation(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	in := registerRequest()
	in.Password = ""
	_, err := uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, registerRequest())
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "keeper@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "keeper@example.com", resp.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "keeper@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_InactiveUserForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, registerRequest())
	require.NoError(t, err)
	repo.users["keeper@example.com"].Status = "disabled"

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "keeper@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
