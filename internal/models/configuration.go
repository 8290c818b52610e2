package models

import "time"

const (
	// ConfigurationID is the identifier of the only configuration record.
	ConfigurationID = "default"

	DefaultLowStockThreshold = 10
	DefaultExpirationMonths  = 2
)

// Configuration holds the alert thresholds ("configuracion").
type Configuration struct {
	ID                string    `json:"id"`
	LowStockThreshold int       `json:"stock_bajo_limite"`
	ExpirationMonths  int       `json:"vencimiento_alerta_meses"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultConfiguration returns the configuration used when none is stored.
func DefaultConfiguration(now time.Time) Configuration {
	return Configuration{
		ID:                ConfigurationID,
		LowStockThreshold: DefaultLowStockThreshold,
		ExpirationMonths:  DefaultExpirationMonths,
		UpdatedAt:         now,
	}
}

type ConfigurationPatch struct {
	LowStockThreshold *int `json:"stock_bajo_limite" validate:"omitempty,min=0,max=2147483647"`
	ExpirationMonths  *int `json:"vencimiento_alerta_meses" validate:"omitempty,min=0,max=2147483647"`
}

func (p ConfigurationPatch) IsEmpty() bool {
	return p.LowStockThreshold == nil && p.ExpirationMonths == nil
}

func (p ConfigurationPatch) Apply(cfg *Configuration, now time.Time) {
	if p.LowStockThreshold != nil {
		cfg.LowStockThreshold = *p.LowStockThreshold
	}
	if p.ExpirationMonths != nil {
		cfg.ExpirationMonths = *p.ExpirationMonths
	}
	cfg.UpdatedAt = now
}
