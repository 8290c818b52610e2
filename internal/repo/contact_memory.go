package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

type InMemoryContactRepository struct {
	mu       sync.RWMutex
	contacts []models.Contact
}

func NewInMemoryContactRepository() *InMemoryContactRepository {
	return &InMemoryContactRepository{
		contacts: []models.Contact{},
	}
}

func (r *InMemoryContactRepository) Create(_ context.Context, contact models.Contact) (models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contacts {
		if c.ID == contact.ID {
			return models.Contact{}, ErrDuplicatedValueUnique
		}
	}
	r.contacts = append(r.contacts, contact)
	return contact, nil
}

func (r *InMemoryContactRepository) List(_ context.Context, filter ListFilter) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Contact{}
	for _, c := range r.contacts {
		email := ""
		if c.Email != nil {
			email = *c.Email
		}
		if filter.matches(c.Name, email) {
			filtered = append(filtered, c)
		}
	}

	start, end := filter.page(len(filtered))
	return slices.Clone(filtered[start:end]), nil
}

func (r *InMemoryContactRepository) GetByID(_ context.Context, id string) (models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, ErrContactNotFound
}

func (r *InMemoryContactRepository) Update(_ context.Context, id string, patch models.ContactPatch, now time.Time) (models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.contacts {
		if r.contacts[i].ID == id {
			patch.Apply(&r.contacts[i], now)
			return r.contacts[i], nil
		}
	}
	return models.Contact{}, ErrContactNotFound
}

func (r *InMemoryContactRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.contacts {
		if c.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return ErrContactNotFound
}

func (r *InMemoryContactRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = []models.Contact{}
}
