// seed inicializa la base de datos: crea el esquema si no existe, siembra el
// catálogo de roles con su matriz de permisos y crea el usuario Super Admin
// inicial.
//
// Uso: go run ./cmd/seed
// El email y password del Super Admin se leen de SEED_ADMIN_EMAIL y
// SEED_ADMIN_PASSWORD. El comando es idempotente: re-ejecutarlo no duplica
// filas ni pisa el password de un admin existente.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/billing-pro/internal/application/auth"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/billing-pro/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	slug       TEXT NOT NULL UNIQUE,
	email      TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	address    TEXT NOT NULL DEFAULT '',
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS roles (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS permissions (
	id         UUID PRIMARY KEY,
	role_id    UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
	module     TEXT NOT NULL CHECK (module IN ('companies', 'users', 'products', 'customers', 'invoices', 'reports')),
	can_create BOOLEAN NOT NULL DEFAULT FALSE,
	can_read   BOOLEAN NOT NULL DEFAULT FALSE,
	can_update BOOLEAN NOT NULL DEFAULT FALSE,
	can_delete BOOLEAN NOT NULL DEFAULT FALSE,
	UNIQUE (role_id, module)
);

CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	company_id    UUID REFERENCES companies(id) ON DELETE CASCADE,
	role_id       UUID NOT NULL REFERENCES roles(id),
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          UUID PRIMARY KEY,
	company_id  UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC(18, 2) NOT NULL,
	tax_rate    NUMERIC(8, 4) NOT NULL DEFAULT 0,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS customers (
	id         UUID PRIMARY KEY,
	company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	address    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS invoices (
	id          UUID PRIMARY KEY,
	company_id  UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	customer_id UUID NOT NULL REFERENCES customers(id),
	number      TEXT NOT NULL,
	date        TIMESTAMPTZ NOT NULL,
	due_date    TIMESTAMPTZ,
	subtotal    NUMERIC(18, 2) NOT NULL,
	tax         NUMERIC(18, 2) NOT NULL,
	total       NUMERIC(18, 2) NOT NULL,
	status      TEXT NOT NULL CHECK (status IN ('pending', 'paid', 'overdue', 'cancelled')),
	notes       TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (company_id, number)
);

CREATE TABLE IF NOT EXISTS invoice_items (
	id          UUID PRIMARY KEY,
	invoice_id  UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
	product_id  UUID NOT NULL REFERENCES products(id),
	description TEXT NOT NULL,
	quantity    BIGINT NOT NULL CHECK (quantity > 0),
	unit_price  NUMERIC(18, 2) NOT NULL,
	total       NUMERIC(18, 2) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_company ON users (company_id);
CREATE INDEX IF NOT EXISTS idx_products_company ON products (company_id);
CREATE INDEX IF NOT EXISTS idx_customers_company ON customers (company_id);
CREATE INDEX IF NOT EXISTS idx_invoices_company ON invoices (company_id);
CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items (invoice_id);
`

// permFlags flags CRUD de una fila de la matriz.
type permFlags struct {
	create, read, update, delete bool
}

var (
	crud     = permFlags{true, true, true, true}
	cru      = permFlags{create: true, read: true, update: true}
	readOnly = permFlags{read: true}
)

// roleSeed descripción de un rol y su matriz de permisos por módulo.
// Los módulos ausentes quedan denegados (default-deny).
type roleSeed struct {
	name        string
	description string
	matrix      map[string]permFlags
}

var roleSeeds = []roleSeed{
	{
		name:        entity.RoleSuperAdmin,
		description: "Acceso total a todas las empresas y módulos",
		matrix: map[string]permFlags{
			entity.ModuleCompanies: crud,
			entity.ModuleUsers:     crud,
			entity.ModuleProducts:  crud,
			entity.ModuleCustomers: crud,
			entity.ModuleInvoices:  crud,
			entity.ModuleReports:   crud,
		},
	},
	{
		name:        entity.RoleCompanyAdmin,
		description: "Administración completa dentro de su empresa",
		matrix: map[string]permFlags{
			entity.ModuleUsers:     crud,
			entity.ModuleProducts:  crud,
			entity.ModuleCustomers: crud,
			entity.ModuleInvoices:  crud,
			entity.ModuleReports:   readOnly,
		},
	},
	{
		name:        entity.RoleManager,
		description: "Gestión operativa: productos, clientes y facturas sin borrado",
		matrix: map[string]permFlags{
			entity.ModuleUsers:     readOnly,
			entity.ModuleProducts:  cru,
			entity.ModuleCustomers: cru,
			entity.ModuleInvoices:  cru,
			entity.ModuleReports:   readOnly,
		},
	},
	{
		name:        entity.RoleUser,
		description: "Solo lectura",
		matrix: map[string]permFlags{
			entity.ModuleProducts:  readOnly,
			entity.ModuleCustomers: readOnly,
			entity.ModuleInvoices:  readOnly,
			entity.ModuleReports:   readOnly,
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear esquema: %v", err)
	}
	fmt.Println("Esquema verificado")

	roleIDs := make(map[string]string, len(roleSeeds))
	for _, rs := range roleSeeds {
		id, err := upsertRole(ctx, pool, rs.name, rs.description)
		if err != nil {
			fail("sembrar rol %q: %v", rs.name, err)
		}
		roleIDs[rs.name] = id

		for module, flags := range rs.matrix {
			if err := upsertPermission(ctx, pool, id, module, flags); err != nil {
				fail("sembrar permiso %q/%q: %v", rs.name, module, err)
			}
		}
	}
	fmt.Printf("Roles sembrados: %d\n", len(roleSeeds))

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@billing-pro.local")
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		fail("SEED_ADMIN_PASSWORD es obligatoria para crear el Super Admin")
	}

	created, err := seedSuperAdmin(ctx, pool, roleIDs[entity.RoleSuperAdmin], adminEmail, adminPassword)
	if err != nil {
		fail("crear Super Admin: %v", err)
	}
	if created {
		fmt.Printf("Super Admin creado: %s\n", adminEmail)
	} else {
		fmt.Printf("Super Admin ya existía: %s (sin cambios)\n", adminEmail)
	}
}

// upsertRole inserta o actualiza el rol por nombre y devuelve su ID.
func upsertRole(ctx context.Context, pool postgres.Querier, name, description string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, `
		INSERT INTO roles (id, name, description, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
		RETURNING id`,
		uuid.NewString(), name, description,
	).Scan(&id)
	return id, err
}

// upsertPermission inserta o actualiza la fila (role, module) de la matriz.
func upsertPermission(ctx context.Context, pool postgres.Querier, roleID, module string, f permFlags) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO permissions (id, role_id, module, can_create, can_read, can_update, can_delete)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (role_id, module) DO UPDATE SET
			can_create = EXCLUDED.can_create,
			can_read   = EXCLUDED.can_read,
			can_update = EXCLUDED.can_update,
			can_delete = EXCLUDED.can_delete`,
		uuid.NewString(), roleID, module, f.create, f.read, f.update, f.delete,
	)
	return err
}

// seedSuperAdmin crea el usuario inicial si el email no existe todavía.
// El Super Admin no pertenece a ninguna empresa (company_id NULL).
func seedSuperAdmin(ctx context.Context, pool postgres.Querier, roleID, email, password string) (bool, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	tag, err := pool.Exec(ctx, `
		INSERT INTO users (id, company_id, role_id, email, password_hash, name, is_active, created_at, updated_at)
		VALUES ($1, NULL, $2, $3, $4, 'Super Admin', TRUE, now(), now())
		ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), roleID, email, hash,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
