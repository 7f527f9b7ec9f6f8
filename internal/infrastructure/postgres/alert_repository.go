package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `id, organization_id, type, severity, title, message, item_id, is_read,
	acknowledged_by, acknowledged_at, created_at`

// AlertRepo implementación de AlertRepository sobre PostgreSQL.
// La deduplicación vive aquí: upsert idempotente por (item_id, type).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// UpsertByItemAndType inserta la alerta o, si ya existe una del mismo tipo para el ítem,
// actualiza severidad y mensaje preservando is_read y created_at de la original.
func (r *AlertRepo) UpsertByItemAndType(ctx context.Context, alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (id, organization_id, type, severity, title, message, item_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)
		ON CONFLICT (item_id, type)
		DO UPDATE SET severity = EXCLUDED.severity, title = EXCLUDED.title, message = EXCLUDED.message`
	_, err := r.q.Exec(ctx, query,
		alert.ID, alert.OrganizationID, alert.Type, alert.Severity,
		alert.Title, alert.Message, alert.ItemID, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert alert: %w", err)
	}
	return nil
}

// DeleteByItemAndType resuelve la alerta cuando el ítem vuelve sobre su nivel de reorden.
func (r *AlertRepo) DeleteByItemAndType(ctx context.Context, itemID, alertType string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM alerts WHERE item_id = $1 AND type = $2`,
		itemID, alertType,
	)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID. Devuelve nil si no existe.
func (r *AlertRepo) GetByID(ctx context.Context, id string) (*entity.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`
	var a entity.Alert
	var itemID, ackBy *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.OrganizationID, &a.Type, &a.Severity, &a.Title, &a.Message,
		&itemID, &a.IsRead, &ackBy, &a.AcknowledgedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	a.ItemID = strOrEmpty(itemID)
	a.AcknowledgedBy = strOrEmpty(ackBy)
	return &a, nil
}

// ListByOrganization lista alertas de la organización, más recientes primero.
// Con onlyUnread filtra las no leídas (campana del dashboard).
func (r *AlertRepo) ListByOrganization(ctx context.Context, orgID string, onlyUnread bool, limit int) ([]*entity.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts WHERE organization_id = $1 AND ($2 = false OR is_read = false)
		ORDER BY created_at DESC LIMIT $3`
	rows, err := r.q.Query(ctx, query, orgID, onlyUnread, limit)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		var itemID, ackBy *string
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Type, &a.Severity, &a.Title, &a.Message,
			&itemID, &a.IsRead, &ackBy, &a.AcknowledgedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.ItemID = strOrEmpty(itemID)
		a.AcknowledgedBy = strOrEmpty(ackBy)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// MarkRead marca una alerta como leída.
func (r *AlertRepo) MarkRead(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE alerts SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Acknowledge registra quién atendió la alerta y la marca como leída.
func (r *AlertRepo) Acknowledge(ctx context.Context, id, profileID string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE alerts SET is_read = true, acknowledged_by = $2, acknowledged_at = now() WHERE id = $1`,
		id, profileID,
	)
	if err != nil {
		return fmt.Errorf("acknowledge alert: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
