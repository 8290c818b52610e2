package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, the same way clients submit them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Sale units offered by the UI. The field is free text.
const (
	UnitUnits = "Unidades"
	UnitBoxes = "Cajas"
)

// Product represents a stock item ("producto") tracked by the inventory.
type Product struct {
	ID             string          `json:"id"`
	Code           string          `json:"codigo"`
	Description    string          `json:"descripcion"`
	SaleUnit       string          `json:"unidad_venta"`
	Stock          int             `json:"stock_actual"`
	SalePrice      decimal.Decimal `json:"precio_venta"`
	IntakeDate     *Date           `json:"fecha_ingreso"`
	ExpirationDate *Date           `json:"fecha_vencimiento"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductPatch carries the fields supplied by a partial update. A nil field
// was not supplied and leaves the stored value untouched.
type ProductPatch struct {
	Code           *string          `json:"codigo" validate:"omitempty,min=1"`
	Description    *string          `json:"descripcion" validate:"omitempty,min=1"`
	SaleUnit       *string          `json:"unidad_venta"`
	Stock          *int             `json:"stock_actual" validate:"omitempty,min=0,max=2147483647"`
	SalePrice      *decimal.Decimal `json:"precio_venta" validate:"omitempty,min=0"`
	IntakeDate     *Date            `json:"fecha_ingreso" swaggertype:"string"`
	ExpirationDate *Date            `json:"fecha_vencimiento" swaggertype:"string"`
}

func (p ProductPatch) IsEmpty() bool {
	return p.Code == nil && p.Description == nil && p.SaleUnit == nil &&
		p.Stock == nil && p.SalePrice == nil && p.IntakeDate == nil && p.ExpirationDate == nil
}

// Apply copies the supplied fields onto product and stamps UpdatedAt.
func (p ProductPatch) Apply(product *Product, now time.Time) {
	if p.Code != nil {
		product.Code = *p.Code
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.SaleUnit != nil {
		product.SaleUnit = *p.SaleUnit
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.SalePrice != nil {
		product.SalePrice = *p.SalePrice
	}
	if p.IntakeDate != nil {
		d := *p.IntakeDate
		product.IntakeDate = &d
	}
	if p.ExpirationDate != nil {
		d := *p.ExpirationDate
		product.ExpirationDate = &d
	}
	product.UpdatedAt = now
}
