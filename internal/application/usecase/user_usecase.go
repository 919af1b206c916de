package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// UserUseCase administración de usuarios dentro de la empresa.
type UserUseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, profiles repository.ProfileRepository) *UserUseCase {
	return &UserUseCase{users: users, profiles: profiles}
}

// List lista los usuarios de la empresa.
func (uc *UserUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ListResponse[dto.UserResponse], error) {
	page.Normalize()
	list, err := uc.users.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.ListResponse[dto.UserResponse]{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// Update cambia nombre, perfil, estado o password de un usuario de la empresa.
func (uc *UserUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.ProfileID != nil {
		p, err := uc.profiles.GetByID(ctx, companyID, *in.ProfileID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.Invalid("perfil_id", "el perfil no existe")
		}
		user.ProfileID = p.ID
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
