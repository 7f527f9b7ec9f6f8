package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, organization_id, item_id, type, quantity, from_location_id, to_location_id,
	reference, unit_cost, notes, performed_by, created_at`

// StockMovementRepo implementación de StockMovementRepository sobre PostgreSQL.
// Los movimientos son inmutables: solo insert y lecturas.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.OrganizationID, movement.ItemID, movement.Type, movement.Quantity,
		nullStr(movement.FromLocationID), nullStr(movement.ToLocationID),
		movement.Reference, movement.UnitCost, movement.Notes,
		nullStr(movement.PerformedBy), movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByOrganization lista movimientos de la organización, más recientes primero, con paginación.
func (r *StockMovementRepo) ListByOrganization(ctx context.Context, orgID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE organization_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListRecent devuelve los últimos movimientos para el widget del dashboard.
func (r *StockMovementRepo) ListRecent(ctx context.Context, orgID string, limit int) ([]*entity.StockMovement, error) {
	return r.ListByOrganization(ctx, orgID, limit, 0)
}

// ListByItem lista los movimientos de un ítem, más recientes primero.
func (r *StockMovementRepo) ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE item_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock movements by item: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// CountSince cuenta movimientos de la organización desde una fecha (para "movimientos del mes").
func (r *StockMovementRepo) CountSince(ctx context.Context, orgID string, since time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM stock_movements WHERE organization_id = $1 AND created_at >= $2`,
		orgID, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stock movements: %w", err)
	}
	return count, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var fromLoc, toLoc, performedBy *string
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.ItemID, &m.Type, &m.Quantity,
			&fromLoc, &toLoc, &m.Reference, &m.UnitCost, &m.Notes, &performedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.FromLocationID = strOrEmpty(fromLoc)
		m.ToLocationID = strOrEmpty(toLoc)
		m.PerformedBy = strOrEmpty(performedBy)
		list = append(list, &m)
	}
	return list, rows.Err()
}
