package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.byID[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) ListByCompany(string, int, int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(*entity.User) error                              { return nil }
func (f *fakeUserRepo) Delete(string) error                                    { return nil }

type fakeRoleRepo struct {
	byID map[string]*entity.Role
}

func (f *fakeRoleRepo) GetByID(id string) (*entity.Role, error) { return f.byID[id], nil }
func (f *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, r := range f.byID {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}
func (f *fakeRoleRepo) List() ([]*entity.Role, error) { return nil, nil }

type fakeCompanyRepo struct {
	byID map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.byID[id], nil
}
func (f *fakeCompanyRepo) GetBySlug(string) (*entity.Company, error)      { return nil, nil }
func (f *fakeCompanyRepo) List(int, int) ([]*entity.Company, error)       { return nil, nil }
func (f *fakeCompanyRepo) Update(*entity.Company) error                   { return nil }
func (f *fakeCompanyRepo) Delete(string) error                            { return nil }

type fakePermRepo struct{}

func (fakePermRepo) Get(string, string) (*entity.Permission, error)       { return nil, nil }
func (fakePermRepo) ListByRole(string) ([]*entity.Permission, error)      { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testPassword = "correct-horse-battery"

func buildUseCase(t *testing.T, active bool) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	user := &entity.User{
		ID:           "u1",
		CompanyID:    "c1",
		RoleID:       "r1",
		Email:        "ana@acme.test",
		PasswordHash: string(hash),
		Name:         "Ana",
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	users := &fakeUserRepo{
		byEmail: map[string]*entity.User{user.Email: user},
		byID:    map[string]*entity.User{user.ID: user},
	}
	roles := &fakeRoleRepo{byID: map[string]*entity.Role{
		"r1": {ID: "r1", Name: entity.RoleCompanyAdmin, CreatedAt: now},
	}}
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{
		"c1": {ID: "c1", Name: "ACME", Slug: "acme-12ab34cd", IsActive: true},
	}}
	return auth.NewAuthUseCase(users, roles, companies, fakePermRepo{}, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "billing-pro-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	uc := buildUseCase(t, true)
	out, err := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: testPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, entity.RoleCompanyAdmin, out.User.Role)
}

// Email inexistente y password incorrecto deben producir exactamente el
// mismo error (anti-enumeración de cuentas).
func TestLogin_CredencialesInvalidas_Indistinguibles(t *testing.T) {
	uc := buildUseCase(t, true)

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@acme.test", Password: testPassword})
	_, errWrongPw := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "incorrecto"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw, "ambos caminos deben ser indistinguibles")
}

// Credenciales correctas pero cuenta desactivada: error distinto al de
// credenciales inválidas.
func TestLogin_CuentaInactiva(t *testing.T) {
	uc := buildUseCase(t, false)
	_, err := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: testPassword})

	assert.ErrorIs(t, err, domain.ErrAccountInactive)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}
