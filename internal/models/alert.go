package models

// Alert kinds.
const (
	AlertZeroStock      = "stock_cero"
	AlertLowStock       = "stock_bajo"
	AlertNearExpiration = "proximo_vencer"
)

// Alert is derived from a product on every request and never stored.
type Alert struct {
	ID                  string `json:"id"`
	Code                string `json:"codigo"`
	Description         string `json:"descripcion"`
	Kind                string `json:"tipo_alerta"`
	Stock               int    `json:"stock_actual"`
	ExpirationDate      *Date  `json:"fecha_vencimiento"`
	DaysUntilExpiration *int   `json:"dias_para_vencer"`
}
