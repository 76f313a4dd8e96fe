package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) ListByCompany(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(*entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(string) error          { return nil }

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]*entity.InvoiceItem
}

func (f *fakeInvoiceRepo) Create(*entity.Invoice) error         { return nil }
func (f *fakeInvoiceRepo) CreateItem(*entity.InvoiceItem) error { return nil }
func (f *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return f.invoices[id], nil
}
func (f *fakeInvoiceRepo) GetItemsByInvoiceID(id string) ([]*entity.InvoiceItem, error) {
	return f.items[id], nil
}
func (f *fakeInvoiceRepo) ListByCompany(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) Update(*entity.Invoice) error        { return nil }
func (f *fakeInvoiceRepo) DeleteItemsByInvoiceID(string) error { return nil }
func (f *fakeInvoiceRepo) Delete(string) error                 { return nil }

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (f *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) GetBySlug(string) (*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) List(int, int) ([]*entity.Company, error)  { return nil, nil }
func (f *fakeCompanyRepo) Update(*entity.Company) error              { return nil }
func (f *fakeCompanyRepo) Delete(string) error                       { return nil }

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) ListByCompany(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(string) error           { return nil }

type fakePDFGenerator struct{}

func (fakePDFGenerator) GenerateInvoicePDF(context.Context, *entity.Invoice, *entity.Company, *entity.Customer, []*entity.InvoiceItem) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

const (
	lineCompanyID = "co-1"
	lineProductID = "prod-1"
)

func buildLinesUseCase() *InvoiceUseCase {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		lineProductID: {
			ID:        lineProductID,
			CompanyID: lineCompanyID,
			Name:      "Servicio de soporte",
			Price:     dec("99.90"),
		},
	}}
	return NewInvoiceUseCase(nil, &fakeInvoiceRepo{}, &fakeCustomerRepo{}, products, dec("0.08"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Precio unitario: ausente vs cero explícito
// ──────────────────────────────────────────────────────────────────────────────

// Sin unit_price en la petición se toma el precio de catálogo.
func TestBuildLines_PrecioAusenteTomaCatalogo(t *testing.T) {
	uc := buildLinesUseCase()
	lines, err := uc.buildLines(lineCompanyID, []dto.InvoiceItemRequest{
		{ProductID: lineProductID, Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(dec("99.90")),
		"precio ausente debe resolverse al precio de catálogo")
}

// Un cero explícito es un precio válido (línea de cortesía) y no debe ser
// reemplazado por el precio de catálogo.
func TestBuildLines_CeroExplicitoSeRespeta(t *testing.T) {
	uc := buildLinesUseCase()
	lines, err := uc.buildLines(lineCompanyID, []dto.InvoiceItemRequest{
		{ProductID: lineProductID, Quantity: 1, UnitPrice: decPtr("0")},
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.IsZero(),
		"cero explícito debe conservarse, no sustituirse por el catálogo")
}

// Un precio explícito distinto de cero también pisa el de catálogo.
func TestBuildLines_PrecioExplicitoPisaCatalogo(t *testing.T) {
	uc := buildLinesUseCase()
	lines, err := uc.buildLines(lineCompanyID, []dto.InvoiceItemRequest{
		{ProductID: lineProductID, Quantity: 3, UnitPrice: decPtr("10.50")},
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(dec("10.50")))
}

// Descripción vacía toma el nombre del producto como snapshot.
func TestBuildLines_DescripcionVaciaTomaNombreDeProducto(t *testing.T) {
	uc := buildLinesUseCase()
	lines, err := uc.buildLines(lineCompanyID, []dto.InvoiceItemRequest{
		{ProductID: lineProductID, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Servicio de soporte", lines[0].Description)
}

// Producto de otra empresa en una línea es una violación de scope.
func TestBuildLines_ProductoDeOtraEmpresa_RetornaForbidden(t *testing.T) {
	uc := buildLinesUseCase()
	_, err := uc.buildLines("otra-empresa", []dto.InvoiceItemRequest{
		{ProductID: lineProductID, Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF: referencias rotas
// ──────────────────────────────────────────────────────────────────────────────

func pdfUseCase(companies map[string]*entity.Company, customers map[string]*entity.Customer) *PDFUseCase {
	inv := &entity.Invoice{
		ID:         "inv-1",
		CompanyID:  lineCompanyID,
		CustomerID: "cust-1",
		Number:     "F-001",
		Status:     entity.InvoiceStatusPending,
	}
	var invoices repository.InvoiceRepository = &fakeInvoiceRepo{
		invoices: map[string]*entity.Invoice{inv.ID: inv},
		items:    map[string][]*entity.InvoiceItem{},
	}
	return NewPDFUseCase(invoices, &fakeCompanyRepo{companies: companies}, &fakeCustomerRepo{customers: customers}, fakePDFGenerator{})
}

func pdfPrincipal() access.Principal {
	return access.Principal{UserID: "u-1", CompanyID: lineCompanyID, Role: entity.RoleCompanyAdmin}
}

// Factura cuya empresa ya no existe: es un recurso roto, no un error
// interno. Debe retornar ErrNotFound, nunca un wrap de error nil.
func TestDownloadInvoicePDF_EmpresaInexistente_RetornaNotFound(t *testing.T) {
	uc := pdfUseCase(
		map[string]*entity.Company{},
		map[string]*entity.Customer{"cust-1": {ID: "cust-1", CompanyID: lineCompanyID, Name: "ACME"}},
	)
	_, _, err := uc.DownloadInvoicePDF(context.Background(), pdfPrincipal(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Igual para el cliente referenciado por la factura.
func TestDownloadInvoicePDF_ClienteInexistente_RetornaNotFound(t *testing.T) {
	uc := pdfUseCase(
		map[string]*entity.Company{lineCompanyID: {ID: lineCompanyID, Name: "Mi Empresa"}},
		map[string]*entity.Customer{},
	)
	_, _, err := uc.DownloadInvoicePDF(context.Background(), pdfPrincipal(), "inv-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Camino feliz: con factura, empresa y cliente presentes se genera el PDF.
func TestDownloadInvoicePDF_GeneraPDFYNombreDeArchivo(t *testing.T) {
	uc := pdfUseCase(
		map[string]*entity.Company{lineCompanyID: {ID: lineCompanyID, Name: "Mi Empresa"}},
		map[string]*entity.Customer{"cust-1": {ID: "cust-1", CompanyID: lineCompanyID, Name: "ACME"}},
	)
	pdfBytes, filename, err := uc.DownloadInvoicePDF(context.Background(), pdfPrincipal(), "inv-1")
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "invoice_F-001.pdf", filename)
}
