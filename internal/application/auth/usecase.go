package auth

import (
	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
	"github.com/tu-usuario/billing-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost factor de costo fijo para el hash de passwords.
const BcryptCost = 12

// dummyPasswordHash hash bcrypt real (costo 12, password "password") contra
// el que se compara cuando el email no existe. Debe ser un hash válido: si
// no lo fuera, CompareHashAndPassword fallaría al parsearlo sin ejecutar la
// derivación de clave y el camino de email desconocido respondería más
// rápido que el de password incorrecto.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y perfil de sesión.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	companyRepo repository.CompanyRepository
	permRepo    repository.PermissionRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	companyRepo repository.CompanyRepository,
	permRepo repository.PermissionRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		companyRepo: companyRepo,
		permRepo:    permRepo,
		jwtCfg:      jwtCfg,
	}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
//
// Email inexistente y password incorrecto retornan el mismo
// ErrInvalidCredentials: el caller no debe poder enumerar cuentas.
// Cuenta desactivada retorna ErrAccountInactive (distinguible, por diseño).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación dummy para igualar el tiempo de respuesta con el
		// camino de password incorrecto.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	role, err := uc.roleRepo.GetByID(user.RoleID)
	if err != nil {
		return nil, err
	}
	roleName := ""
	if role != nil {
		roleName = role.Name
	}

	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		user.ID, user.CompanyID, user.RoleID, roleName, user.Email,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	resp.Role = roleName
	return &dto.LoginResponse{Token: token, User: *resp}, nil
}

// Me devuelve usuario + rol + empresa + permisos del principal autenticado.
// Consulta el estado actual en DB (a diferencia de la validación del token,
// que confía en los claims emitidos).
func (uc *AuthUseCase) Me(p access.Principal) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(p.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	role, err := uc.roleRepo.GetByID(user.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.MeResponse{
		User: *toUserResponse(user),
		Role: dto.RoleResponse{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			CreatedAt:   role.CreatedAt,
		},
	}
	out.User.Role = role.Name

	if user.CompanyID != "" {
		company, err := uc.companyRepo.GetByID(user.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			out.Company = &dto.CompanyResponse{
				ID:        company.ID,
				Name:      company.Name,
				Slug:      company.Slug,
				Email:     company.Email,
				Phone:     company.Phone,
				Address:   company.Address,
				IsActive:  company.IsActive,
				CreatedAt: company.CreatedAt,
				UpdatedAt: company.UpdatedAt,
			}
		}
	}

	perms, err := uc.permRepo.ListByRole(user.RoleID)
	if err != nil {
		return nil, err
	}
	out.Permissions = make([]dto.PermissionResponse, 0, len(perms))
	for _, pm := range perms {
		out.Permissions = append(out.Permissions, dto.PermissionResponse{
			Module:    pm.Module,
			CanCreate: pm.CanCreate,
			CanRead:   pm.CanRead,
			CanUpdate: pm.CanUpdate,
			CanDelete: pm.CanDelete,
		})
	}
	return out, nil
}

// HashPassword genera el hash bcrypt con el costo fijo de la aplicación.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		RoleID:    u.RoleID,
		Email:     u.Email,
		Name:      u.Name,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
