package handlers

import (
	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Code           string          `json:"codigo" validate:"required"`
	Description    string          `json:"descripcion" validate:"required"`
	SaleUnit       string          `json:"unidad_venta"`
	Stock          int             `json:"stock_actual" validate:"min=0,max=2147483647"`
	SalePrice      decimal.Decimal `json:"precio_venta" validate:"min=0"`
	IntakeDate     *models.Date    `json:"fecha_ingreso" swaggertype:"string" example:"2025-01-15"`
	ExpirationDate *models.Date    `json:"fecha_vencimiento" swaggertype:"string" example:"2025-06-30"`
}

type ContactRequest struct {
	Name    string  `json:"nombre" validate:"required"`
	Address *string `json:"direccion"`
	Phone   *string `json:"telefono"`
	Email   *string `json:"correo"`
	Kind    string  `json:"tipo" validate:"omitempty,oneof=Proveedor Tienda"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	FullName string `json:"nombre_completo" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type UserLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	Username string `json:"username"`
	FullName string `json:"nombre_completo"`
}

type LoginResult struct {
	Token     string    `json:"access_token"`
	TokenType string    `json:"token_type"`
	User      LoginUser `json:"user"`
}

type MeResponse struct {
	Username string `json:"username"`
	FullName string `json:"nombre_completo"`
	Active   bool   `json:"activo"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
