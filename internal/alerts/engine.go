// Package alerts derives stock and expiration notifications from the product
// collection and the configured thresholds.
package alerts

import "github.com/rogerio-castellano/inventario-api/internal/models"

// Derive returns one alert per (product, triggered rule) pair, in product
// order with the stock rule before the expiration rule.
//
// Zero stock yields stock_cero and never stock_bajo. Stock strictly between
// zero and the threshold yields stock_bajo. Independently, an expiration date
// on or before today plus the horizon (calendar months) yields proximo_vencer
// with the signed number of days left.
func Derive(products []models.Product, cfg models.Configuration, today models.Date) []models.Alert {
	limit := today.AddMonths(cfg.ExpirationMonths)
	alerts := []models.Alert{}

	for _, p := range products {
		switch {
		case p.Stock == 0:
			alerts = append(alerts, newAlert(p, models.AlertZeroStock, nil))
		case p.Stock > 0 && p.Stock < cfg.LowStockThreshold:
			alerts = append(alerts, newAlert(p, models.AlertLowStock, nil))
		}

		if p.ExpirationDate != nil && !p.ExpirationDate.After(limit) {
			days := today.DaysUntil(*p.ExpirationDate)
			alerts = append(alerts, newAlert(p, models.AlertNearExpiration, &days))
		}
	}
	return alerts
}

func newAlert(p models.Product, kind string, days *int) models.Alert {
	return models.Alert{
		ID:                  p.ID,
		Code:                p.Code,
		Description:         p.Description,
		Kind:                kind,
		Stock:               p.Stock,
		ExpirationDate:      p.ExpirationDate,
		DaysUntilExpiration: days,
	}
}
