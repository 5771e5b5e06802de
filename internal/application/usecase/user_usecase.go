package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/proreps/crm-backend/internal/application/dto"
	"github.com/proreps/crm-backend/internal/domain"
	"github.com/proreps/crm-backend/internal/domain/entity"
	"github.com/proreps/crm-backend/internal/domain/repository"
)

const minPasswordLength = 6

// UserUseCase aplica regras de negócio para a administração de usuários.
type UserUseCase struct {
	repo repository.UserRepository
	now  func() time.Time
}

// NewUserUseCase constrói o caso de uso com o porto de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// Create cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve domain.ErrEmailAlreadyExists se o email já está em uso.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "")
	}
	if in.Email == "" {
		return nil, domain.NewValidationError("email", "")
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.NewValidationError("password", "a senha deve ter no mínimo 6 caracteres")
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUsuario
	}
	if !entity.ValidRole(role) {
		return nil, domain.NewValidationError("role", "papel desconhecido")
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := uc.now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        in.Phone,
		Department:   in.Department,
		IsActive:     isActive,
		Status:       statusFor(isActive),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID busca um usuário por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List devolve todos os usuários, sem hashes de senha.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Update aplica uma atualização parcial feita pelo admin actorID.
// Um admin não pode rebaixar o próprio papel (domain.ErrSelfDemote).
func (uc *UserUseCase) Update(ctx context.Context, actorID, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Role != nil && *in.Role != user.Role {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.NewValidationError("role", "papel desconhecido")
		}
		if actorID == id && user.Role == entity.RoleAdmin && *in.Role != entity.RoleAdmin {
			return nil, domain.ErrSelfDemote
		}
		user.Role = *in.Role
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Department != nil {
		user.Department = *in.Department
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return nil, domain.NewValidationError("password", "a senha deve ter no mínimo 6 caracteres")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
		user.Status = statusFor(*in.IsActive)
	}
	if in.Status != nil {
		user.Status = *in.Status
		user.IsActive = *in.Status == entity.UserStatusActive
	}
	user.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete remove um usuário. Um admin não pode excluir a própria conta.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return domain.ErrSelfDelete
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ToggleStatus alterna um usuário entre ativo e inativo.
// Um admin não pode desativar a própria conta.
func (uc *UserUseCase) ToggleStatus(ctx context.Context, actorID, id int64) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	user.IsActive = !user.IsActive
	user.Status = statusFor(user.IsActive)
	user.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdateProfile aplica as alterações que o próprio usuário pode fazer no perfil.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, id int64, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Department != nil {
		user.Department = *in.Department
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return nil, domain.NewValidationError("password", "a senha deve ter no mínimo 6 caracteres")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Stats calcula estatísticas de usuários, contando como recentes os criados nos últimos 30 dias.
func (uc *UserUseCase) Stats(ctx context.Context) (*dto.UserStatsResponse, error) {
	row, err := uc.repo.Stats(ctx, uc.now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	return &dto.UserStatsResponse{
		TotalUsers:    row.Total,
		ActiveUsers:   row.Active,
		InactiveUsers: row.Inactive,
		UsersByRole:   row.ByRole,
		RecentUsers:   row.Recent,
	}, nil
}

func statusFor(isActive bool) string {
	if isActive {
		return entity.UserStatusActive
	}
	return entity.UserStatusInactive
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Phone:      u.Phone,
		Department: u.Department,
		IsActive:   u.IsActive,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
		LastLogin:  u.LastLogin,
	}
}
