package entity

import "time"

// Tipos de alerta.
const (
	AlertTypeLowStock = "low_stock"
	AlertTypeExpiry   = "expiry"
	AlertTypeReorder  = "reorder"
)

// Severidades de alerta, de menor a mayor urgencia.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Alert representa una alerta de inventario persistida.
// La deduplicación es responsabilidad del almacén: upsert idempotente por (ItemID, Type).
type Alert struct {
	ID             string
	OrganizationID string
	Type           string // low_stock, expiry, reorder
	Severity       string // low, medium, high, critical
	Title          string
	Message        string
	ItemID         string
	IsRead         bool
	AcknowledgedBy string
	AcknowledgedAt *time.Time
	CreatedAt      time.Time
}
