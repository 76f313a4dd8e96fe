package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/billing-pro/internal/application/access"
	"github.com/tu-usuario/billing-pro/internal/application/dto"
	"github.com/tu-usuario/billing-pro/internal/domain"
	domainbilling "github.com/tu-usuario/billing-pro/internal/domain/billing"
	"github.com/tu-usuario/billing-pro/internal/domain/entity"
	"github.com/tu-usuario/billing-pro/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase crea, consulta y actualiza facturas. Los totales salen
// siempre del calculador de dominio (tasa plana configurada); cabecera y
// líneas se escriben en una sola transacción.
type InvoiceUseCase struct {
	txRunner     BillingTxRunner
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	taxRate      decimal.Decimal
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	taxRate decimal.Decimal,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		taxRate:      taxRate,
	}
}

// Create crea una factura con sus líneas. La empresa de la factura es la
// del cliente; el principal debe tener acceso a ella. El estado inicial es
// siempre pending.
func (uc *InvoiceUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || in.Number == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyInvoice
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccessCompany(customer.CompanyID) {
		return nil, domain.ErrForbidden
	}
	companyID := customer.CompanyID

	lines, err := uc.buildLines(companyID, in.Items)
	if err != nil {
		return nil, err
	}
	totals, err := domainbilling.Compute(lines, uc.taxRate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if in.Date != "" {
		if date, err = time.Parse(dateLayout, in.Date); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	var dueDate time.Time
	if in.DueDate != "" {
		if dueDate, err = time.Parse(dateLayout, in.DueDate); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: in.CustomerID,
		Number:     in.Number,
		Date:       date,
		DueDate:    dueDate,
		Subtotal:   totals.Subtotal,
		Tax:        totals.Tax,
		Total:      totals.Total,
		Status:     entity.InvoiceStatusPending,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	items := itemsFromLines(inv.ID, totals.Lines)

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv, customer.Name, items), nil
}

// GetByID obtiene una factura con sus líneas, aplicando el chequeo de scope.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccessCompany(inv.CompanyID) {
		return nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer, _ := uc.customerRepo.GetByID(inv.CustomerID); customer != nil {
		customerName = customer.Name
	}
	return uc.toResponse(inv, customerName, items), nil
}

// List lista facturas de la empresa objetivo.
func (uc *InvoiceUseCase) List(ctx context.Context, p access.Principal, companyID string, limit, offset int) ([]*dto.InvoiceResponse, error) {
	if companyID == "" {
		companyID = p.CompanyID
	}
	if !p.CanAccessCompany(companyID) {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.invoiceRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, uc.toResponse(inv, "", nil))
	}
	return out, nil
}

// Update actualiza estado, fechas, notas o líneas. Reemplazar líneas
// recalcula los totales; el cambio de estado es siempre explícito (no hay
// transición automática a overdue).
func (uc *InvoiceUseCase) Update(ctx context.Context, p access.Principal, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !p.CanAccessCompany(inv.CompanyID) {
		return nil, domain.ErrForbidden
	}

	if in.Status != nil {
		if !entity.ValidInvoiceStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		inv.Status = *in.Status
	}
	if in.DueDate != nil {
		due, err := time.Parse(dateLayout, *in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		inv.DueDate = due
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}

	var items []*entity.InvoiceItem
	if in.Items != nil {
		if len(in.Items) == 0 {
			return nil, domain.ErrEmptyInvoice
		}
		lines, err := uc.buildLines(inv.CompanyID, in.Items)
		if err != nil {
			return nil, err
		}
		totals, err := domainbilling.Compute(lines, uc.taxRate)
		if err != nil {
			return nil, err
		}
		inv.Subtotal = totals.Subtotal
		inv.Tax = totals.Tax
		inv.Total = totals.Total
		items = itemsFromLines(inv.ID, totals.Lines)
	}
	inv.UpdatedAt = time.Now()

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if items != nil {
			if err := invoiceRepo.DeleteItemsByInvoiceID(inv.ID); err != nil {
				return err
			}
			for _, item := range items {
				if err := invoiceRepo.CreateItem(item); err != nil {
					return err
				}
			}
		}
		return invoiceRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}

	if items == nil {
		if items, err = uc.invoiceRepo.GetItemsByInvoiceID(inv.ID); err != nil {
			return nil, err
		}
	}
	customerName := ""
	if customer, _ := uc.customerRepo.GetByID(inv.CustomerID); customer != nil {
		customerName = customer.Name
	}
	return uc.toResponse(inv, customerName, items), nil
}

// Delete elimina la factura y sus líneas en una transacción.
func (uc *InvoiceUseCase) Delete(ctx context.Context, p access.Principal, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if !p.CanAccessCompany(inv.CompanyID) {
		return domain.ErrForbidden
	}
	return uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.DeleteItemsByInvoiceID(id); err != nil {
			return err
		}
		return invoiceRepo.Delete(id)
	})
}

// buildLines valida cada línea contra el catálogo: el producto debe existir
// y pertenecer a la misma empresa. Descripción vacía y precio ausente toman
// el snapshot del producto; un precio explícito (incluido cero) se respeta.
func (uc *InvoiceUseCase) buildLines(companyID string, items []dto.InvoiceItemRequest) ([]domainbilling.LineInput, error) {
	lines := make([]domainbilling.LineInput, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return nil, domain.ErrInvalidLineItem
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		description := item.Description
		if description == "" {
			description = product.Name
		}
		unitPrice := product.Price
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}
		lines = append(lines, domainbilling.LineInput{
			ProductID:   item.ProductID,
			Description: description,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
		})
	}
	return lines, nil
}

func itemsFromLines(invoiceID string, lines []domainbilling.Line) []*entity.InvoiceItem {
	items := make([]*entity.InvoiceItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total,
		})
	}
	return items
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, customerName string, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		CompanyID:    inv.CompanyID,
		CustomerID:   inv.CustomerID,
		CustomerName: customerName,
		Number:       inv.Number,
		Date:         inv.Date.Format(dateLayout),
		Subtotal:     inv.Subtotal,
		Tax:          inv.Tax,
		Total:        inv.Total,
		Status:       inv.Status,
		Notes:        inv.Notes,
		Items:        make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	if !inv.DueDate.IsZero() {
		resp.DueDate = inv.DueDate.Format(dateLayout)
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return resp
}
