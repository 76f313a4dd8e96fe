package access_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
)

// fakePermRepo matriz de permisos en memoria para los tests.
type fakePermRepo struct {
	rows map[string]*entity.Permission // clave roleID|module
	err  error
}

func (f *fakePermRepo) Get(roleID, module string) (*entity.Permission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[roleID+"|"+module], nil
}

func (f *fakePermRepo) ListByRole(roleID string) ([]*entity.Permission, error) {
	var out []*entity.Permission
	for _, p := range f.rows {
		if p.RoleID == roleID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestAuthorize_FlagsPorAccion(t *testing.T) {
	repo := &fakePermRepo{rows: map[string]*entity.Permission{
		"manager|products": {
			RoleID: "manager", Module: entity.ModuleProducts,
			CanCreate: true, CanRead: true, CanUpdate: true, CanDelete: false,
		},
	}}
	svc := access.NewService(repo)

	cases := []struct {
		action entity.Action
		want   bool
	}{
		{entity.ActionCreate, true},
		{entity.ActionRead, true},
		{entity.ActionUpdate, true},
		{entity.ActionDelete, false},
	}
	for _, tc := range cases {
		ok, err := svc.Authorize("manager", entity.ModuleProducts, tc.action)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "acción %s", tc.action)
	}
}

// Default-deny: un rol sin fila para el módulo debe fallar toda acción.
func TestAuthorize_SinFila_DefaultDeny(t *testing.T) {
	svc := access.NewService(&fakePermRepo{rows: map[string]*entity.Permission{}})

	for _, a := range []entity.Action{entity.ActionCreate, entity.ActionRead, entity.ActionUpdate, entity.ActionDelete} {
		ok, err := svc.Authorize("role-sin-permisos", entity.ModuleProducts, a)
		require.NoError(t, err)
		assert.False(t, ok, "acción %s debe negarse sin fila de permiso", a)
	}
}

func TestAuthorize_ModuloDesconocido_Niega(t *testing.T) {
	svc := access.NewService(&fakePermRepo{rows: map[string]*entity.Permission{}})
	ok, err := svc.Authorize("admin", "modulo-inexistente", entity.ActionRead)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorize_ErrorDeInfraestructura_SePropaga(t *testing.T) {
	svc := access.NewService(&fakePermRepo{err: errors.New("db caída")})
	_, err := svc.Authorize("admin", entity.ModuleProducts, entity.ActionRead)
	assert.Error(t, err)
}

func TestCanAccessCompany_ScopePorEmpresa(t *testing.T) {
	admin := access.Principal{CompanyID: "empresa-a", Role: entity.RoleCompanyAdmin}

	assert.True(t, admin.CanAccessCompany("empresa-a"))
	assert.True(t, admin.CanAccessCompany(""), "companyID ausente se interpreta como la propia")
	assert.False(t, admin.CanAccessCompany("empresa-b"),
		"un Company Admin del tenant A no debe acceder a recursos del tenant B")
}

func TestCanAccessCompany_SuperAdminBypass(t *testing.T) {
	super := access.Principal{CompanyID: "", Role: entity.RoleSuperAdmin}

	assert.True(t, super.CanAccessCompany("empresa-a"))
	assert.True(t, super.CanAccessCompany("empresa-b"))
	assert.True(t, super.CanAccessCompany(""))
}
