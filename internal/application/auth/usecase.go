package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, registro y perfil del usuario actual.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	profileRepo repository.ProfileRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, profileRepo: profileRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario en la empresa indicada: hashea el password con bcrypt y persiste.
// El email es único en todo el sistema porque el login no recibe la empresa.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, companyID string, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("email", email)
	}
	profile, err := uc.profileRepo.GetByID(ctx, companyID, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.Invalid("perfil_id", "el perfil no existe")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		ProfileID:    profile.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Status:       entity.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera el JWT y retorna token, usuario y módulos habilitados.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserActive {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.Status != entity.CompanyActive {
		return nil, domain.ErrForbidden
	}
	profile, modules, err := uc.profileWithModules(ctx, user)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		ProfileID: user.ProfileID,
		Role:      profile.Name,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		User:    *ToUserResponse(user),
		Profile: profile.Name,
		Modules: modules,
	}, nil
}

// Me devuelve el usuario autenticado con su perfil, módulos y sucursales.
func (uc *AuthUseCase) Me(ctx context.Context, companyID, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrUserNotFound
	}
	profile, modules, err := uc.profileWithModules(ctx, user)
	if err != nil {
		return nil, err
	}
	branches := profile.BranchIDs
	if branches == nil {
		branches = []string{}
	}
	return &dto.MeResponse{
		User:     *ToUserResponse(user),
		Profile:  profile.Name,
		Modules:  modules,
		Branches: branches,
	}, nil
}

// profileWithModules resuelve el perfil del usuario. El perfil admin recibe el catálogo completo.
func (uc *AuthUseCase) profileWithModules(ctx context.Context, user *entity.User) (*entity.Profile, []string, error) {
	profile, err := uc.profileRepo.GetByID(ctx, user.CompanyID, user.ProfileID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil || !profile.Active {
		return nil, nil, domain.ErrForbidden
	}
	if !profile.IsAdmin() {
		modules := profile.ModuleCodes
		if modules == nil {
			modules = []string{}
		}
		return profile, modules, nil
	}
	catalog, err := uc.profileRepo.ListModules(ctx)
	if err != nil {
		return nil, nil, err
	}
	modules := make([]string, 0, len(catalog))
	for _, m := range catalog {
		modules = append(modules, m.Code)
	}
	return profile, modules, nil
}

// ToUserResponse convierte la entidad a DTO (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		ProfileID: u.ProfileID,
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
