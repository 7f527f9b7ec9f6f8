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

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, organization_id, sku, barcode, name, description, category_id, supplier_id, location_id,
	quantity, unit, unit_cost, selling_price, reorder_level, reorder_qty, expiry_date, status, created_at, updated_at`

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador de persistencia para ítems. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un nuevo ítem de inventario.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.OrganizationID, item.SKU, nullStr(item.Barcode), item.Name, item.Description,
		nullStr(item.CategoryID), nullStr(item.SupplierID), nullStr(item.LocationID),
		item.Quantity, item.Unit, item.UnitCost, item.SellingPrice,
		item.ReorderLevel, item.ReorderQty, item.ExpiryDate, item.Status,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve nil si no existe.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get inventory item")
}

// GetBySKU obtiene un ítem por organización y SKU. Devuelve nil si no existe.
func (r *InventoryItemRepo) GetBySKU(ctx context.Context, orgID, sku string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE organization_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, orgID, sku), "get inventory item by sku")
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE). Usar solo dentro de una tx.
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get inventory item for update")
}

// ListByOrganization lista todos los ítems de la organización ordenados por nombre.
func (r *InventoryItemRepo) ListByOrganization(ctx context.Context, orgID string) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE organization_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Search filtra por coincidencia parcial en SKU o nombre, insensible a mayúsculas y tildes
// (unaccent requiere la extensión homónima en la base).
func (r *InventoryItemRepo) Search(ctx context.Context, orgID, search string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory_items
		WHERE organization_id = $1
		  AND (unaccent(name) ILIKE unaccent('%' || $2 || '%') OR sku ILIKE '%' || $2 || '%')
		ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query, orgID, search)
	if err != nil {
		return nil, fmt.Errorf("search inventory items: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Update actualiza los datos maestros del ítem, incluida la cantidad (el caso de uso
// decide cuándo mutarla; los movimientos pasan por UpdateQuantity dentro de una tx).
func (r *InventoryItemRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET
			sku = $2, barcode = $3, name = $4, description = $5, category_id = $6, supplier_id = $7,
			location_id = $8, quantity = $9, unit = $10, unit_cost = $11, selling_price = $12,
			reorder_level = $13, reorder_qty = $14, expiry_date = $15, status = $16, updated_at = $17
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.SKU, nullStr(item.Barcode), item.Name, item.Description,
		nullStr(item.CategoryID), nullStr(item.SupplierID), nullStr(item.LocationID),
		item.Quantity, item.Unit, item.UnitCost, item.SellingPrice,
		item.ReorderLevel, item.ReorderQty, item.ExpiryDate, item.Status, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity fija la cantidad y recalcula el estado out_of_stock/active en la misma sentencia.
func (r *InventoryItemRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	query := `
		UPDATE inventory_items SET
			quantity = $2,
			status = CASE
				WHEN $2 = 0 AND status = 'active' THEN 'out_of_stock'
				WHEN $2 > 0 AND status = 'out_of_stock' THEN 'active'
				ELSE status
			END,
			updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update inventory item quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *InventoryItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (r *InventoryItemRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return it, nil
}

func (r *InventoryItemRepo) scanAll(rows pgx.Rows) ([]*entity.InventoryItem, error) {
	var list []*entity.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	var barcode, categoryID, supplierID, locationID *string
	err := row.Scan(
		&it.ID, &it.OrganizationID, &it.SKU, &barcode, &it.Name, &it.Description,
		&categoryID, &supplierID, &locationID,
		&it.Quantity, &it.Unit, &it.UnitCost, &it.SellingPrice,
		&it.ReorderLevel, &it.ReorderQty, &it.ExpiryDate, &it.Status,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	it.Barcode = strOrEmpty(barcode)
	it.CategoryID = strOrEmpty(categoryID)
	it.SupplierID = strOrEmpty(supplierID)
	it.LocationID = strOrEmpty(locationID)
	return &it, nil
}
