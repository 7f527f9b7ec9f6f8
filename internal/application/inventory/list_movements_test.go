package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocklens-api/internal/application/inventory"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

func TestMovementQuery_List_ResuelveNombresDeItems(t *testing.T) {
	itemRepo := newFakeItemRepo(testItem("i1", 10, 3), testItem("i2", 4, 3))
	movementRepo := &fakeMovementRepo{}
	_ = movementRepo.Create(context.Background(), &entity.StockMovement{
		ID: "m1", OrganizationID: testOrgID, ItemID: "i1", Type: entity.MovementTypeInbound, Quantity: 5,
	})
	_ = movementRepo.Create(context.Background(), &entity.StockMovement{
		ID: "m2", OrganizationID: testOrgID, ItemID: "i2", Type: entity.MovementTypeOutbound, Quantity: 2,
	})
	uc := inventory.NewMovementQueryUseCase(movementRepo, itemRepo)

	resp, err := uc.List(context.Background(), testOrgID, 50, 0)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Ítem i1", resp.Movements[0].ItemName)
	assert.Equal(t, "Ítem i2", resp.Movements[1].ItemName)
}

func TestMovementQuery_ListByItem_ValidaPertenencia(t *testing.T) {
	ajeno := testItem("i1", 10, 3)
	ajeno.OrganizationID = "otra-org"
	uc := inventory.NewMovementQueryUseCase(&fakeMovementRepo{}, newFakeItemRepo(ajeno))

	_, err := uc.ListByItem(context.Background(), testOrgID, "i1", 50)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListByItem(context.Background(), testOrgID, "no-existe", 50)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
