package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/application/inventory"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

const (
	testOrgID     = "org-1"
	testProfileID = "profile-1"
)

func testItem(id string, qty, reorder int64) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:             id,
		OrganizationID: testOrgID,
		SKU:            "SKU-" + id,
		Name:           "Ítem " + id,
		Quantity:       qty,
		Unit:           "pcs",
		UnitCost:       decimal.NewFromInt(100),
		SellingPrice:   decimal.NewFromInt(150),
		ReorderLevel:   reorder,
		Status:         entity.ItemStatusActive,
	}
}

func setup(items ...*entity.InventoryItem) (*inventory.RegisterMovementUseCase, *fakeItemRepo, *fakeMovementRepo, *fakeAlertRepo) {
	itemRepo := newFakeItemRepo(items...)
	movementRepo := &fakeMovementRepo{}
	alertRepo := newFakeAlertRepo()
	tx := &fakeTxRunner{itemRepo: itemRepo, movementRepo: movementRepo, alertRepo: alertRepo}
	return inventory.NewRegisterMovementUseCase(tx, itemRepo), itemRepo, movementRepo, alertRepo
}

func TestRegister_Inbound_SumaStock(t *testing.T) {
	uc, itemRepo, movementRepo, _ := setup(testItem("i1", 10, 5))

	resp, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeInbound,
		Quantity: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), resp.Quantity)
	assert.Equal(t, testProfileID, resp.PerformedBy)

	got, _ := itemRepo.GetByID(context.Background(), "i1")
	assert.Equal(t, int64(25), got.Quantity)
	assert.Len(t, movementRepo.movements, 1)
}

func TestRegister_Inbound_RecalculaCostoPromedio(t *testing.T) {
	uc, itemRepo, _, _ := setup(testItem("i1", 10, 5)) // 10 uds a $100

	costo := decimal.NewFromInt(130)
	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeInbound,
		Quantity: 5,
		UnitCost: &costo,
	})
	require.NoError(t, err)

	got, _ := itemRepo.GetByID(context.Background(), "i1")
	// (10×100 + 5×130) / 15 = 110
	assert.True(t, got.UnitCost.Equal(decimal.NewFromInt(110)), "esperaba 110, obtuvo %s", got.UnitCost)
}

func TestRegister_Inbound_SinCosto_ConservaCostoActual(t *testing.T) {
	uc, itemRepo, _, _ := setup(testItem("i1", 10, 5))

	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeInbound,
		Quantity: 5,
	})
	require.NoError(t, err)

	got, _ := itemRepo.GetByID(context.Background(), "i1")
	assert.True(t, got.UnitCost.Equal(decimal.NewFromInt(100)))
}

func TestRegister_Outbound_RestaStock(t *testing.T) {
	uc, itemRepo, _, _ := setup(testItem("i1", 10, 3))

	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeOutbound,
		Quantity: 4,
	})
	require.NoError(t, err)

	got, _ := itemRepo.GetByID(context.Background(), "i1")
	assert.Equal(t, int64(6), got.Quantity)
}

func TestRegister_Outbound_StockInsuficiente_AbortaSinEscribir(t *testing.T) {
	uc, itemRepo, movementRepo, _ := setup(testItem("i1", 3, 5))

	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeOutbound,
		Quantity: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, _ := itemRepo.GetByID(context.Background(), "i1")
	assert.Equal(t, int64(3), got.Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, movementRepo.movements, "no debe registrarse el movimiento")
}

func TestRegister_Outbound_HastaCero_MarcaOutOfStock(t *testing.T) {
	uc, itemRepo, _, alertRepo := setup(testItem("i1", 4, 5))

	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeOutbound,
		Quantity: 4,
	})
	require.NoError(t, err)

	got, _ := itemRepo.GetByID(context.Background(), "i1")
	assert.Equal(t, int64(0), got.Quantity)
	assert.Equal(t, entity.ItemStatusOutOfStock, got.Status)

	alert := alertRepo.alerts[[2]string{"i1", entity.AlertTypeLowStock}]
	require.NotNil(t, alert)
	assert.Equal(t, entity.SeverityCritical, alert.Severity)
}

func TestRegister_Adjustment_FijaCantidadAbsoluta(t *testing.T) {
	uc, itemRepo, _, _ := setup(testItem("i1", 10, 3))

	resp, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeAdjustment,
		Quantity: 7, // fija en 7, no suma 7
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Quantity)

	got, _ := itemRepo.GetByID(context.Background(), "i1")
	assert.Equal(t, int64(7), got.Quantity)
}

func TestRegister_Stocktake_CeroEsValido(t *testing.T) {
	uc, itemRepo, _, _ := setup(testItem("i1", 10, 3))

	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeStocktake,
		Quantity: 0,
	})
	require.NoError(t, err)

	got, _ := itemRepo.GetByID(context.Background(), "i1")
	assert.Equal(t, int64(0), got.Quantity)
	assert.Equal(t, entity.ItemStatusOutOfStock, got.Status)
}

func TestRegister_Transfer_ReubicaSinCambiarCantidad(t *testing.T) {
	item := testItem("i1", 10, 3)
	item.LocationID = "loc-a"
	uc, itemRepo, _, _ := setup(item)

	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:         "i1",
		Type:           entity.MovementTypeTransfer,
		Quantity:       10,
		FromLocationID: "loc-a",
		ToLocationID:   "loc-b",
	})
	require.NoError(t, err)

	got, _ := itemRepo.GetByID(context.Background(), "i1")
	assert.Equal(t, int64(10), got.Quantity)
	assert.Equal(t, "loc-b", got.LocationID)
}

func TestRegister_Transfer_MismaUbicacion_Invalido(t *testing.T) {
	uc, _, _, _ := setup(testItem("i1", 10, 3))

	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:         "i1",
		Type:           entity.MovementTypeTransfer,
		Quantity:       10,
		FromLocationID: "loc-a",
		ToLocationID:   "loc-a",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ValidacionDeEntrada(t *testing.T) {
	uc, _, _, _ := setup(testItem("i1", 10, 3))
	negativo := decimal.NewFromInt(-5)

	casos := []struct {
		nombre string
		req    dto.RegisterMovementRequest
	}{
		{"sin item_id", dto.RegisterMovementRequest{Type: entity.MovementTypeInbound, Quantity: 1}},
		{"tipo desconocido", dto.RegisterMovementRequest{ItemID: "i1", Type: "devolucion", Quantity: 1}},
		{"inbound cantidad cero", dto.RegisterMovementRequest{ItemID: "i1", Type: entity.MovementTypeInbound, Quantity: 0}},
		{"outbound cantidad negativa", dto.RegisterMovementRequest{ItemID: "i1", Type: entity.MovementTypeOutbound, Quantity: -2}},
		{"adjustment negativo", dto.RegisterMovementRequest{ItemID: "i1", Type: entity.MovementTypeAdjustment, Quantity: -1}},
		{"transfer sin ubicaciones", dto.RegisterMovementRequest{ItemID: "i1", Type: entity.MovementTypeTransfer, Quantity: 1}},
		{"costo unitario negativo", dto.RegisterMovementRequest{ItemID: "i1", Type: entity.MovementTypeInbound, Quantity: 1, UnitCost: &negativo}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Register(context.Background(), testOrgID, testProfileID, c.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegister_ItemInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _, _ := setup()

	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "no-existe",
		Type:     entity.MovementTypeInbound,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_ItemDeOtraOrganizacion_RetornaForbidden(t *testing.T) {
	ajeno := testItem("i1", 10, 3)
	ajeno.OrganizationID = "otra-org"
	uc, _, _, _ := setup(ajeno)

	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeInbound,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_SincronizaAlertaLowStock(t *testing.T) {
	uc, _, _, alertRepo := setup(testItem("i1", 20, 10))
	key := [2]string{"i1", entity.AlertTypeLowStock}

	// 20 → 4: por debajo de la mitad del reorden → high
	_, err := uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeOutbound,
		Quantity: 16,
	})
	require.NoError(t, err)
	require.NotNil(t, alertRepo.alerts[key])
	assert.Equal(t, entity.SeverityHigh, alertRepo.alerts[key].Severity)

	// 4 → 5: mitad exacta del reorden → medium (upsert actualiza, no duplica)
	_, err = uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeInbound,
		Quantity: 1,
	})
	require.NoError(t, err)
	require.Len(t, alertRepo.alerts, 1)
	assert.Equal(t, entity.SeverityMedium, alertRepo.alerts[key].Severity)

	// 5 → 25: sobre el reorden → la alerta se resuelve
	_, err = uc.Register(context.Background(), testOrgID, testProfileID, dto.RegisterMovementRequest{
		ItemID:   "i1",
		Type:     entity.MovementTypeInbound,
		Quantity: 20,
	})
	require.NoError(t, err)
	assert.Empty(t, alertRepo.alerts)
}
