package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/domain/analytics"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

// ValuationPDFGenerator puerto para la representación PDF del reporte de
// valorización (implementado en infrastructure/pdf con Maroto).
type ValuationPDFGenerator interface {
	GenerateValuationPDF(
		ctx context.Context,
		org *entity.Organization,
		summary dto.ReportsSummaryDTO,
		lines []dto.ValuationLineDTO,
		generatedAt time.Time,
	) ([]byte, error)
}

// ReportsUseCase genera los reportes de inventario: resumen de valorización,
// roll-ups, export CSV y reporte PDF. Todo se recalcula con el motor puro sobre
// un snapshot fresco en cada llamada; no hay caché.
type ReportsUseCase struct {
	itemRepo     repository.InventoryItemRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	movementRepo repository.StockMovementRepository
	orgRepo      repository.OrganizationRepository
	pdfGenerator ValuationPDFGenerator
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	itemRepo repository.InventoryItemRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	movementRepo repository.StockMovementRepository,
	orgRepo repository.OrganizationRepository,
	pdfGenerator ValuationPDFGenerator,
) *ReportsUseCase {
	return &ReportsUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		movementRepo: movementRepo,
		orgRepo:      orgRepo,
		pdfGenerator: pdfGenerator,
	}
}

// GetSummary construye el resumen de reportes de la organización: valorización,
// stock bajo, movimientos del mes en curso, top-5 y roll-ups por categoría y
// proveedor (asignación directa, sin jerarquía).
func (uc *ReportsUseCase) GetSummary(ctx context.Context, orgID string) (*dto.ReportsSummaryDTO, error) {
	type itemsResult struct {
		items []*entity.InventoryItem
		err   error
	}
	type catsResult struct {
		cats []*entity.Category
		err  error
	}
	type supsResult struct {
		sups []*entity.Supplier
		err  error
	}
	type countResult struct {
		count int
		err   error
	}

	itemsCh := make(chan itemsResult, 1)
	catsCh := make(chan catsResult, 1)
	supsCh := make(chan supsResult, 1)
	countCh := make(chan countResult, 1)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	go func() {
		items, err := uc.itemRepo.ListByOrganization(ctx, orgID)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		cats, err := uc.categoryRepo.ListByOrganization(ctx, orgID)
		catsCh <- catsResult{cats, err}
	}()
	go func() {
		sups, err := uc.supplierRepo.ListByOrganization(ctx, orgID)
		supsCh <- supsResult{sups, err}
	}()
	go func() {
		count, err := uc.movementRepo.CountSince(ctx, orgID, monthStart)
		countCh <- countResult{count, err}
	}()

	items := <-itemsCh
	cats := <-catsCh
	sups := <-supsCh
	count := <-countCh

	if items.err != nil {
		return nil, fmt.Errorf("reportes: ítems: %w", items.err)
	}
	if cats.err != nil {
		return nil, fmt.Errorf("reportes: categorías: %w", cats.err)
	}
	if sups.err != nil {
		return nil, fmt.Errorf("reportes: proveedores: %w", sups.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("reportes: movimientos del mes: %w", count.err)
	}

	snapshot := analytics.Snapshot(items.items)
	summary := analytics.Valuate(snapshot)
	top, err := analytics.TopByQuantity(snapshot, analytics.DefaultTopN)
	if err != nil {
		return nil, fmt.Errorf("reportes: top-n: %w", err)
	}

	catBuckets := analytics.RollupByCategory(snapshot, analytics.CategoryRefs(cats.cats))
	supBuckets := analytics.RollupBySupplier(snapshot, analytics.SupplierRefs(sups.sups))

	return &dto.ReportsSummaryDTO{
		TotalValue:         summary.TotalValue.Round(2),
		TotalItems:         summary.TotalItems,
		LowStockCount:      summary.LowStockCount,
		MovementsThisMonth: count.count,
		DataQualityIDs:     summary.DataQuality,
		TopItems:           toTopItems(top),
		CategoryBreakdown:  toBreakdown(catBuckets),
		SupplierBreakdown:  toBreakdown(supBuckets),
	}, nil
}

// ExportCSV genera el export completo del inventario de la organización con el
// orden de columnas fijo SKU, Name, Quantity, Unit, Unit Cost, Selling Price, Status.
func (uc *ReportsUseCase) ExportCSV(ctx context.Context, orgID string) (*dto.ExportResultDTO, error) {
	items, err := uc.itemRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("export csv: ítems: %w", err)
	}
	content, err := analytics.ExportCSV(analytics.Snapshot(items))
	if err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return &dto.ExportResultDTO{
		Filename: fmt.Sprintf("inventory-report-%s.csv", time.Now().Format("2006-01-02")),
		Content:  content,
	}, nil
}

// GenerateValuationPDF genera el reporte de valorización en PDF: una fila por
// ítem con su valor y los totales del snapshot.
func (uc *ReportsUseCase) GenerateValuationPDF(ctx context.Context, orgID string) ([]byte, error) {
	org, err := uc.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("pdf valorización: organización: %w", err)
	}
	if org == nil {
		return nil, fmt.Errorf("pdf valorización: organización %s no existe", orgID)
	}
	summary, err := uc.GetSummary(ctx, orgID)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("pdf valorización: ítems: %w", err)
	}

	snapshot := analytics.Snapshot(items)
	lines := make([]dto.ValuationLineDTO, 0, len(snapshot))
	for _, it := range snapshot {
		_, low := analytics.ClassifySeverity(it.Quantity, it.ReorderLevel)
		lines = append(lines, dto.ValuationLineDTO{
			SKU:      it.SKU,
			Name:     it.Name,
			Quantity: it.Quantity,
			Unit:     it.Unit,
			UnitCost: it.UnitCost.Round(2),
			Value:    analytics.ItemValue(it).Round(2),
			LowStock: low,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].SKU < lines[j].SKU })

	return uc.pdfGenerator.GenerateValuationPDF(ctx, org, *summary, lines, time.Now())
}

func toTopItems(ranked []analytics.Item) []dto.TopItemDTO {
	out := make([]dto.TopItemDTO, 0, len(ranked))
	for i, it := range ranked {
		out = append(out, dto.TopItemDTO{
			Rank:       i + 1,
			ItemID:     it.ID,
			SKU:        it.SKU,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Unit:       it.Unit,
			TotalValue: analytics.ItemValue(it).Round(2),
		})
	}
	return out
}

// toBreakdown aplana los buckets a una lista estable ordenada por valor
// descendente (desempate por nombre) para que la UI pinte siempre igual.
func toBreakdown(buckets map[string]analytics.Bucket) []dto.BreakdownBucketDTO {
	out := make([]dto.BreakdownBucketDTO, 0, len(buckets))
	for id, b := range buckets {
		out = append(out, dto.BreakdownBucketDTO{
			ID:    id,
			Name:  b.Name,
			Count: b.Count,
			Value: b.Value.Round(2),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
