package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
	"github.com/proreps/crm-backend/pkg/jwt"
)

// fakeUserRepo guarda um conjunto fixo de usuários para os testes de login.
type fakeUserRepo struct {
	byID map[int64]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[int64]*entity.User)}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error { return nil }
func (f *fakeUserRepo) Stats(ctx context.Context, recentSince time.Time) (*repository.UserStatsRow, error) {
	return &repository.UserStatsRow{}, nil
}

var testJWT = JWTConfig{Secret: "segredo-de-teste", ExpHours: 24, Issuer: "crm-backend-test"}

func userWithPassword(t *testing.T, id int64, email, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           id,
		Name:         "Usuário de Teste",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleRepresentante,
		IsActive:     active,
		Status:       entity.UserStatusActive,
	}
}

func TestLogin_SucessoDevolveTokenERegistraAcesso(t *testing.T) {
	repo := newFakeUserRepo(userWithPassword(t, 1, "carlos@proreps.com", "senha123", true))
	uc := NewAuthUseCase(repo, testJWT)
	loginAt := time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)
	uc.now = func() time.Time { return loginAt }

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "carlos@proreps.com",
		Password: "senha123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)

	userID, role, err := jwt.Parse(testJWT.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, entity.RoleRepresentante, role)

	stored, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
	assert.Equal(t, loginAt, *stored.LastLogin, "login bem-sucedido registra o último acesso")
	require.NotNil(t, out.User.LastLogin)
}

func TestLogin_SenhaErradaFalha(t *testing.T) {
	repo := newFakeUserRepo(userWithPassword(t, 1, "carlos@proreps.com", "senha123", true))
	uc := NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "carlos@proreps.com",
		Password: "senha-errada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_EmailDesconhecidoFalha(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ninguem@proreps.com",
		Password: "senha123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CamposVaziosFalham(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInativoFalha(t *testing.T) {
	repo := newFakeUserRepo(userWithPassword(t, 1, "roberto@proreps.com", "senha123", false))
	uc := NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "roberto@proreps.com",
		Password: "senha123",
	})
	assert.ErrorIs(t, err, domain.ErrInactiveUser,
		"conta desativada falha mesmo com a senha certa")
}

func TestMe_UsuarioInexistenteFalha(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Me(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestChangePassword_TrocaComSenhaAtualCorreta(t *testing.T) {
	repo := newFakeUserRepo(userWithPassword(t, 1, "carlos@proreps.com", "senha-antiga", true))
	uc := NewAuthUseCase(repo, testJWT)

	err := uc.ChangePassword(context.Background(), 1, dto.ChangePasswordRequest{
		CurrentPassword: "senha-antiga",
		NewPassword:     "senha-nova",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha-nova")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha-antiga")))
}

func TestChangePassword_SenhaAtualErradaFalha(t *testing.T) {
	repo := newFakeUserRepo(userWithPassword(t, 1, "carlos@proreps.com", "senha-antiga", true))
	uc := NewAuthUseCase(repo, testJWT)

	err := uc.ChangePassword(context.Background(), 1, dto.ChangePasswordRequest{
		CurrentPassword: "nao-e-essa",
		NewPassword:     "senha-nova",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestChangePassword_NovaSenhaCurtaFalha(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWT)

	err := uc.ChangePassword(context.Background(), 1, dto.ChangePasswordRequest{
		CurrentPassword: "qualquer",
		NewPassword:     "123",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "newPassword", verr.Field)
}
