package models

import "time"

// Contact categories.
const (
	ContactSupplier = "Proveedor"
	ContactStore    = "Tienda"
)

// Contact is a supplier or storefront ("contacto").
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Address   *string   `json:"direccion"`
	Phone     *string   `json:"telefono"`
	Email     *string   `json:"correo"`
	Kind      string    `json:"tipo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactPatch struct {
	Name    *string `json:"nombre" validate:"omitempty,min=1"`
	Address *string `json:"direccion"`
	Phone   *string `json:"telefono"`
	Email   *string `json:"correo"`
	Kind    *string `json:"tipo" validate:"omitempty,oneof=Proveedor Tienda"`
}

func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.Phone == nil && p.Email == nil && p.Kind == nil
}

func (p ContactPatch) Apply(contact *Contact, now time.Time) {
	if p.Name != nil {
		contact.Name = *p.Name
	}
	if p.Address != nil {
		contact.Address = p.Address
	}
	if p.Phone != nil {
		contact.Phone = p.Phone
	}
	if p.Email != nil {
		contact.Email = p.Email
	}
	if p.Kind != nil {
		contact.Kind = *p.Kind
	}
	contact.UpdatedAt = now
}
