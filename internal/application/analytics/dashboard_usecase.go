// Package analytics contiene los casos de uso que alimentan el Dashboard y los
// widgets de analítica a partir del motor de agregación del dominio.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/stocklens-api/internal/application/dto"
	domanalytics "github.com/jhoicas/stocklens-api/internal/domain/analytics"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

const (
	dashboardRecentMovements = 10 // movimientos en el widget de actividad
	dashboardUnreadAlerts    = 5  // alertas sin leer en el panel lateral
)

// DashboardUseCase construye el resumen del dashboard para una organización.
//
// Los tres orígenes (ítems, movimientos recientes, alertas sin leer) se
// consultan en paralelo; las métricas derivadas se calculan con el motor puro
// sobre el snapshot completo de ítems, de modo que todas las cifras de una
// respuesta provienen del mismo snapshot inmutable.
type DashboardUseCase struct {
	itemRepo     repository.InventoryItemRepository
	movementRepo repository.StockMovementRepository
	alertRepo    repository.AlertRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	itemRepo repository.InventoryItemRepository,
	movementRepo repository.StockMovementRepository,
	alertRepo repository.AlertRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		alertRepo:    alertRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO de la organización indicada.
//
// Tres llamadas en paralelo:
//  1. ListByOrganization          → snapshot de ítems (métricas + top-5)
//  2. ListRecent(10)              → actividad reciente
//  3. ListByOrganization(unread)  → alertas activas
func (uc *DashboardUseCase) GetSummary(ctx context.Context, orgID string) (*dto.DashboardSummaryDTO, error) {
	type itemsResult struct {
		items []*entity.InventoryItem
		err   error
	}
	type movesResult struct {
		moves []*entity.StockMovement
		err   error
	}
	type alertsResult struct {
		alerts []*entity.Alert
		err    error
	}

	itemsCh := make(chan itemsResult, 1)
	movesCh := make(chan movesResult, 1)
	alertsCh := make(chan alertsResult, 1)

	go func() {
		items, err := uc.itemRepo.ListByOrganization(ctx, orgID)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		moves, err := uc.movementRepo.ListRecent(ctx, orgID, dashboardRecentMovements)
		movesCh <- movesResult{moves, err}
	}()
	go func() {
		alerts, err := uc.alertRepo.ListByOrganization(ctx, orgID, true, dashboardUnreadAlerts)
		alertsCh <- alertsResult{alerts, err}
	}()

	items := <-itemsCh
	moves := <-movesCh
	alerts := <-alertsCh

	if items.err != nil {
		return nil, fmt.Errorf("dashboard: ítems: %w", items.err)
	}
	if moves.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", moves.err)
	}
	if alerts.err != nil {
		return nil, fmt.Errorf("dashboard: alertas: %w", alerts.err)
	}

	// Motor puro sobre el snapshot único
	snapshot := domanalytics.Snapshot(items.items)
	summary := domanalytics.Valuate(snapshot)
	top, err := domanalytics.TopByQuantity(snapshot, domanalytics.DefaultTopN)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top-n: %w", err)
	}

	return &dto.DashboardSummaryDTO{
		TotalItems:      summary.TotalItems,
		LowStockItems:   summary.LowStockCount,
		TotalValue:      summary.TotalValue.Round(2),
		StockMovements:  len(moves.moves),
		DataQualityIDs:  summary.DataQuality,
		TopItems:        toTopItems(top),
		RecentMovements: toMovementResponses(moves.moves),
		Alerts:          toAlertResponses(alerts.alerts),
	}, nil
}

func toTopItems(ranked []domanalytics.Item) []dto.TopItemDTO {
	out := make([]dto.TopItemDTO, 0, len(ranked))
	for i, it := range ranked {
		out = append(out, dto.TopItemDTO{
			Rank:       i + 1,
			ItemID:     it.ID,
			SKU:        it.SKU,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Unit:       it.Unit,
			TotalValue: domanalytics.ItemValue(it).Round(2),
		})
	}
	return out
}

func toMovementResponses(moves []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, dto.MovementResponse{
			ID:             m.ID,
			ItemID:         m.ItemID,
			Type:           m.Type,
			Quantity:       m.Quantity,
			FromLocationID: m.FromLocationID,
			ToLocationID:   m.ToLocationID,
			Reference:      m.Reference,
			UnitCost:       m.UnitCost,
			Notes:          m.Notes,
			PerformedBy:    m.PerformedBy,
			CreatedAt:      m.CreatedAt,
		})
	}
	return out
}

func toAlertResponses(alerts []*entity.Alert) []dto.AlertResponse {
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertResponse{
			ID:        a.ID,
			Type:      a.Type,
			Severity:  a.Severity,
			Title:     a.Title,
			Message:   a.Message,
			ItemID:    a.ItemID,
			IsRead:    a.IsRead,
			CreatedAt: a.CreatedAt,
			AckedAt:   a.AcknowledgedAt,
		})
	}
	return out
}
