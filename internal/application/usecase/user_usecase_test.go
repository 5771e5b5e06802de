package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

// memUserRepo guarda usuários em memória, com busca por email.
type memUserRepo struct {
	nextID int64
	byID   map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[int64]*entity.User)}
}

func (m *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}
func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}
func (m *memUserRepo) Update(ctx context.Context, u *entity.User) error {
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}
func (m *memUserRepo) Delete(ctx context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}
func (m *memUserRepo) Stats(ctx context.Context, recentSince time.Time) (*repository.UserStatsRow, error) {
	row := &repository.UserStatsRow{ByRole: make(map[string]int64)}
	for _, u := range m.byID {
		row.Total++
		if u.IsActive {
			row.Active++
		} else {
			row.Inactive++
		}
		row.ByRole[u.Role]++
		if !u.CreatedAt.Before(recentSince) {
			row.Recent++
		}
	}
	return row, nil
}

func createUser(t *testing.T, uc *UserUseCase, name, email, role string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: "senha-segura",
		Role:     role,
	})
	require.NoError(t, err)
	return out
}

func TestUserCreate_HasheiaSenhaEDefaults(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "João da Silva",
		Email:    "joao@proreps.com",
		Password: "senha-segura",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUsuario, out.Role, "papel vazio vira usuario")
	assert.True(t, out.IsActive)
	assert.Equal(t, entity.UserStatusActive, out.Status)

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "senha-segura", stored.PasswordHash, "a senha nunca é persistida em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha-segura")))
}

func TestUserCreate_SenhaCurtaFalha(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "João",
		Email:    "joao@proreps.com",
		Password: "12345",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestUserCreate_PapelDesconhecidoFalha(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "João",
		Email:    "joao@proreps.com",
		Password: "senha-segura",
		Role:     "gerente",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "role", verr.Field)
}

func TestUserCreate_EmailDuplicadoFalha(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())
	createUser(t, uc, "João", "joao@proreps.com", entity.RoleUsuario)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Outro João",
		Email:    "joao@proreps.com",
		Password: "outra-senha",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserDelete_PropriaContaFalha(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())
	admin := createUser(t, uc, "Admin", "admin@proreps.com", entity.RoleAdmin)

	err := uc.Delete(context.Background(), admin.ID, admin.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDelete)
}

func TestUserDelete_OutraContaFunciona(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewUserUseCase(repo)
	admin := createUser(t, uc, "Admin", "admin@proreps.com", entity.RoleAdmin)
	alvo := createUser(t, uc, "João", "joao@proreps.com", entity.RoleUsuario)

	require.NoError(t, uc.Delete(context.Background(), admin.ID, alvo.ID))

	gone, err := repo.GetByID(context.Background(), alvo.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUserUpdate_AutoRebaixamentoFalha(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())
	admin := createUser(t, uc, "Admin", "admin@proreps.com", entity.RoleAdmin)

	_, err := uc.Update(context.Background(), admin.ID, admin.ID, dto.UpdateUserRequest{
		Role: strPtr(entity.RoleUsuario),
	})
	assert.ErrorIs(t, err, domain.ErrSelfDemote)
}

func TestUserUpdate_AdminRebaixaOutroAdmin(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())
	admin := createUser(t, uc, "Admin", "admin@proreps.com", entity.RoleAdmin)
	outro := createUser(t, uc, "Outro Admin", "outro@proreps.com", entity.RoleAdmin)

	out, err := uc.Update(context.Background(), admin.ID, outro.ID, dto.UpdateUserRequest{
		Role: strPtr(entity.RoleRepresentante),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRepresentante, out.Role)
}

func TestUserUpdate_EmailJaUsadoPorOutroFalha(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())
	admin := createUser(t, uc, "Admin", "admin@proreps.com", entity.RoleAdmin)
	alvo := createUser(t, uc, "João", "joao@proreps.com", entity.RoleUsuario)

	_, err := uc.Update(context.Background(), admin.ID, alvo.ID, dto.UpdateUserRequest{
		Email: strPtr("admin@proreps.com"),
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserToggleStatus_AlternaEProibeASiMesmo(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())
	admin := createUser(t, uc, "Admin", "admin@proreps.com", entity.RoleAdmin)
	alvo := createUser(t, uc, "João", "joao@proreps.com", entity.RoleUsuario)

	out, err := uc.ToggleStatus(context.Background(), admin.ID, alvo.ID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.Equal(t, entity.UserStatusInactive, out.Status)

	out, err = uc.ToggleStatus(context.Background(), admin.ID, alvo.ID)
	require.NoError(t, err)
	assert.True(t, out.IsActive)

	_, err = uc.ToggleStatus(context.Background(), admin.ID, admin.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserStats_ContagensPorPapel(t *testing.T) {
	uc := NewUserUseCase(newMemUserRepo())
	createUser(t, uc, "Admin", "admin@proreps.com", entity.RoleAdmin)
	createUser(t, uc, "Carlos", "carlos@proreps.com", entity.RoleRepresentante)
	createUser(t, uc, "Ana", "ana@proreps.com", entity.RoleRepresentante)

	out, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.TotalUsers)
	assert.Equal(t, int64(3), out.ActiveUsers)
	assert.Equal(t, int64(2), out.UsersByRole[entity.RoleRepresentante])
	assert.Equal(t, int64(3), out.RecentUsers, "todos acabaram de ser criados")
}
