package inventory_test

// Dobles en memoria para los casos de uso de movimientos: repositorios sobre
// mapas y un TxRunner que ejecuta la función directamente (sin BD).

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

type fakeItemRepo struct {
	items map[string]*entity.InventoryItem
}

func newFakeItemRepo(items ...*entity.InventoryItem) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.InventoryItem)}
	for _, it := range items {
		copia := *it
		r.items[it.ID] = &copia
	}
	return r
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copia := *it
	return &copia, nil
}

func (r *fakeItemRepo) GetBySKU(_ context.Context, orgID, sku string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.OrganizationID == orgID && it.SKU == sku {
			copia := *it
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeItemRepo) ListByOrganization(_ context.Context, orgID string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.items {
		if it.OrganizationID == orgID {
			copia := *it
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeItemRepo) Search(ctx context.Context, orgID, _ string) ([]*entity.InventoryItem, error) {
	return r.ListByOrganization(ctx, orgID)
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	if it, ok := r.items[id]; ok {
		it.Quantity = quantity
	}
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	copia := *m
	r.movements = append(r.movements, &copia)
	return nil
}

func (r *fakeMovementRepo) ListByOrganization(_ context.Context, orgID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.OrganizationID == orgID {
			out = append(out, m)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) ListRecent(ctx context.Context, orgID string, limit int) ([]*entity.StockMovement, error) {
	return r.ListByOrganization(ctx, orgID, limit, 0)
}

func (r *fakeMovementRepo) ListByItem(_ context.Context, itemID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) CountSince(_ context.Context, orgID string, since time.Time) (int, error) {
	n := 0
	for _, m := range r.movements {
		if m.OrganizationID == orgID && !m.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type fakeAlertRepo struct {
	// clave (itemID, type), como la restricción única del almacén real
	alerts map[[2]string]*entity.Alert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[[2]string]*entity.Alert)}
}

func (r *fakeAlertRepo) UpsertByItemAndType(_ context.Context, a *entity.Alert) error {
	key := [2]string{a.ItemID, a.Type}
	if prev, ok := r.alerts[key]; ok {
		prev.Severity = a.Severity
		prev.Title = a.Title
		prev.Message = a.Message
		return nil
	}
	copia := *a
	r.alerts[key] = &copia
	return nil
}

func (r *fakeAlertRepo) DeleteByItemAndType(_ context.Context, itemID, alertType string) error {
	delete(r.alerts, [2]string{itemID, alertType})
	return nil
}

func (r *fakeAlertRepo) GetByID(_ context.Context, id string) (*entity.Alert, error) {
	for _, a := range r.alerts {
		if a.ID == id {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeAlertRepo) ListByOrganization(_ context.Context, orgID string, onlyUnread bool, limit int) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for _, a := range r.alerts {
		if a.OrganizationID != orgID {
			continue
		}
		if onlyUnread && a.IsRead {
			continue
		}
		out = append(out, a)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAlertRepo) MarkRead(_ context.Context, id string) error {
	for _, a := range r.alerts {
		if a.ID == id {
			a.IsRead = true
		}
	}
	return nil
}

func (r *fakeAlertRepo) Acknowledge(_ context.Context, id, profileID string) error {
	now := time.Now()
	for _, a := range r.alerts {
		if a.ID == id {
			a.IsRead = true
			a.AcknowledgedBy = profileID
			a.AcknowledgedAt = &now
		}
	}
	return nil
}

// fakeTxRunner ejecuta la función con los mismos repos en memoria; cuenta los
// "commits" (ejecuciones sin error) para verificar atomicidad en los tests.
type fakeTxRunner struct {
	itemRepo     *fakeItemRepo
	movementRepo *fakeMovementRepo
	alertRepo    *fakeAlertRepo
	commits      int
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	movementRepo repository.StockMovementRepository,
	alertRepo repository.AlertRepository,
) error) error {
	if err := fn(t.itemRepo, t.movementRepo, t.alertRepo); err != nil {
		return err
	}
	t.commits++
	return nil
}
