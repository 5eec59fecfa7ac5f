package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
	"github.com/yourcompany/distribucion-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrUserIDAlreadyExists si el userId ya existe en esa empresa.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByUserIDAndCompany(in.UserID, in.CompanyID)
	if existing != nil {
		return nil, domain.ErrUserIDAlreadyExists
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound // empresa no existe
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.UserID
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    in.CompanyID,
		Name:         name,
		UserID:       in.UserID,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica userId/password, genera JWT y retorna token + usuario.
// Si in.CompanyID viene vacío, el userId se busca globalmente (clientes viejos).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	var user *entity.User
	var err error
	if in.CompanyID != "" {
		user, err = uc.userRepo.GetByUserIDAndCompany(in.UserID, in.CompanyID)
	} else {
		user, err = uc.userRepo.FindByUserID(in.UserID)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Name:      u.Name,
		UserID:    u.UserID,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
