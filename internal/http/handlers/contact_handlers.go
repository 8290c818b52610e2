package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventario-api/internal/apierror"
	"github.com/rogerio-castellano/inventario-api/internal/models"
)

// CreateContactHandler godoc
// @Summary Create a contact
// @Tags contactos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param contact body ContactRequest true "Supplier or store"
// @Success 201 {object} models.Contact
// @Failure 400 {object} apierror.ValidationError
// @Failure 401 {object} apierror.APIError
// @Router /api/contactos [post]
func (h *Handler) CreateContactHandler(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !bindAndValidate(w, r, &req) {
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = models.ContactSupplier
	}
	now := h.now()
	created, err := h.contacts.Create(r.Context(), models.Contact{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		Kind:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetContactsHandler godoc
// @Summary List contacts
// @Tags contactos
// @Produce json
// @Param skip query int false "Records to skip" default(0) minimum(0)
// @Param limit query int false "Maximum records" default(1000) minimum(1) maximum(3000)
// @Param q query string false "Case-insensitive search on nombre or correo"
// @Success 200 {array} models.Contact
// @Failure 400 {object} apierror.ValidationError
// @Router /api/contactos [get]
func (h *Handler) GetContactsHandler(w http.ResponseWriter, r *http.Request) {
	filter, problems := pagination(r)
	if len(problems) > 0 {
		writeJSON(w, http.StatusBadRequest, apierror.NewValidation(problems))
		return
	}

	contacts, err := h.contacts.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// GetContactByIDHandler godoc
// @Summary Get contact by ID
// @Tags contactos
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 404 {object} apierror.APIError
// @Router /api/contactos/{id} [get]
func (h *Handler) GetContactByIDHandler(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contacts.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// UpdateContactHandler godoc
// @Summary Update a contact
// @Tags contactos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param contact body models.ContactPatch true "Fields to change"
// @Success 200 {object} models.Contact
// @Failure 400 {object} apierror.APIError
// @Failure 401 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/contactos/{id} [put]
func (h *Handler) UpdateContactHandler(w http.ResponseWriter, r *http.Request) {
	var patch models.ContactPatch
	if !bindAndValidate(w, r, &patch) {
		return
	}
	if patch.IsEmpty() {
		writeServiceError(w, r, models.ErrEmptyPatch)
		return
	}

	updated, err := h.contacts.Update(r.Context(), chi.URLParam(r, "id"), patch, h.now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteContactHandler godoc
// @Summary Delete a contact
// @Tags contactos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/contactos/{id} [delete]
func (h *Handler) DeleteContactHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Contacto eliminado exitosamente"})
}
