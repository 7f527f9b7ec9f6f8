package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/stocklens-api/internal/application/analytics"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

// Stubs con interfaz embebida: solo implementan los métodos que el caso de uso
// invoca; cualquier otro panic-ea y delata un acoplamiento no previsto.

type stubItemRepo struct {
	repository.InventoryItemRepository
	items []*entity.InventoryItem
}

func (s stubItemRepo) ListByOrganization(_ context.Context, _ string) ([]*entity.InventoryItem, error) {
	return s.items, nil
}

type stubMovementRepo struct {
	repository.StockMovementRepository
	recent []*entity.StockMovement
}

func (s stubMovementRepo) ListRecent(_ context.Context, _ string, limit int) ([]*entity.StockMovement, error) {
	if len(s.recent) > limit {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

type stubAlertRepo struct {
	repository.AlertRepository
	unread []*entity.Alert
}

func (s stubAlertRepo) ListByOrganization(_ context.Context, _ string, _ bool, limit int) ([]*entity.Alert, error) {
	if len(s.unread) > limit {
		return s.unread[:limit], nil
	}
	return s.unread, nil
}

func dashboardItem(id, sku, name string, qty, reorder int64, cost float64) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:             id,
		OrganizationID: "org-1",
		SKU:            sku,
		Name:           name,
		Quantity:       qty,
		Unit:           "pcs",
		UnitCost:       decimal.NewFromFloat(cost),
		ReorderLevel:   reorder,
		Status:         entity.ItemStatusActive,
	}
}

func TestDashboard_GetSummary(t *testing.T) {
	items := []*entity.InventoryItem{
		dashboardItem("i1", "SKU-1", "Tornillos", 100, 20, 0.50), // valor 50
		dashboardItem("i2", "SKU-2", "Tuercas", 8, 20, 0.25),     // valor 2, stock bajo
		dashboardItem("i3", "SKU-3", "Arandelas", 0, 10, 1.00),   // valor 0, sin stock
	}
	moves := []*entity.StockMovement{
		{ID: "m1", OrganizationID: "org-1", ItemID: "i1", Type: entity.MovementTypeInbound, Quantity: 10, CreatedAt: time.Now()},
	}
	alerts := []*entity.Alert{
		{ID: "a1", OrganizationID: "org-1", ItemID: "i3", Type: entity.AlertTypeLowStock, Severity: entity.SeverityCritical},
	}

	uc := appanalytics.NewDashboardUseCase(
		stubItemRepo{items: items},
		stubMovementRepo{recent: moves},
		stubAlertRepo{unread: alerts},
	)

	summary, err := uc.GetSummary(context.Background(), "org-1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 2, summary.LowStockItems)
	assert.True(t, summary.TotalValue.Equal(decimal.NewFromInt(52)), "esperaba 52, obtuvo %s", summary.TotalValue)
	assert.Equal(t, 1, summary.StockMovements)
	assert.Empty(t, summary.DataQualityIDs)

	// Top ordenado por cantidad descendente
	require.Len(t, summary.TopItems, 3)
	assert.Equal(t, "SKU-1", summary.TopItems[0].SKU)
	assert.Equal(t, 1, summary.TopItems[0].Rank)
	assert.Equal(t, int64(100), summary.TopItems[0].Quantity)

	require.Len(t, summary.Alerts, 1)
	assert.Equal(t, entity.SeverityCritical, summary.Alerts[0].Severity)
}

func TestDashboard_GetSummary_OrganizacionVacia(t *testing.T) {
	uc := appanalytics.NewDashboardUseCase(stubItemRepo{}, stubMovementRepo{}, stubAlertRepo{})

	summary, err := uc.GetSummary(context.Background(), "org-1")
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalItems)
	assert.Equal(t, 0, summary.LowStockItems)
	assert.True(t, summary.TotalValue.IsZero())
	assert.Empty(t, summary.TopItems)
	assert.Empty(t, summary.RecentMovements)
	assert.Empty(t, summary.Alerts)
}

func TestDashboard_GetSummary_ReportaCalidadDeDatos(t *testing.T) {
	item := dashboardItem("i1", "SKU-1", "Costo negativo", 10, 2, -5)
	uc := appanalytics.NewDashboardUseCase(
		stubItemRepo{items: []*entity.InventoryItem{item}},
		stubMovementRepo{},
		stubAlertRepo{},
	)

	summary, err := uc.GetSummary(context.Background(), "org-1")
	require.NoError(t, err)

	// El valor negativo entra al total tal cual y el ítem queda señalado
	assert.True(t, summary.TotalValue.Equal(decimal.NewFromInt(-50)), "obtuvo %s", summary.TotalValue)
	assert.Equal(t, []string{"i1"}, summary.DataQualityIDs)
}
