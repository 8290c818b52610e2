package alerts

import (
	"context"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

// Summary counts the current alerts per kind for dashboard views.
type Summary struct {
	TotalAlerts      int `json:"total_alertas"`
	ZeroStock        int `json:"stock_cero"`
	LowStock         int `json:"stock_bajo"`
	NearExpiration   int `json:"proximo_vencer"`
	Expired          int `json:"vencidos"`
	ProductsAffected int `json:"productos_afectados"`
}

// Summarize folds a list of alerts into per-kind counts. Expired counts the
// proximo_vencer alerts whose expiration date has already passed.
func Summarize(list []models.Alert) Summary {
	var s Summary
	affected := map[string]struct{}{}
	for _, a := range list {
		s.TotalAlerts++
		affected[a.ID] = struct{}{}
		switch a.Kind {
		case models.AlertZeroStock:
			s.ZeroStock++
		case models.AlertLowStock:
			s.LowStock++
		case models.AlertNearExpiration:
			s.NearExpiration++
			if a.DaysUntilExpiration != nil && *a.DaysUntilExpiration < 0 {
				s.Expired++
			}
		}
	}
	s.ProductsAffected = len(affected)
	return s
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	list, err := s.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(list), nil
}
