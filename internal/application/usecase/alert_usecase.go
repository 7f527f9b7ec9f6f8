package usecase

import (
	"context"

	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/domain"
	"github.com/jhoicas/stocklens-api/internal/domain/repository"
)

// AlertUseCase lecturas y acuses de las alertas de inventario. La generación de
// alertas vive en el registro de movimientos; aquí solo consulta y estado.
type AlertUseCase struct {
	alertRepo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(alertRepo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{alertRepo: alertRepo}
}

// List lista alertas de la organización. Con onlyUnread se limita a las activas.
func (uc *AlertUseCase) List(ctx context.Context, orgID string, onlyUnread bool, limit int) ([]dto.AlertResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	alerts, err := uc.alertRepo.ListByOrganization(ctx, orgID, onlyUnread, limit)
	if err != nil {
		return nil, err
	}
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
	return out, nil
}

// MarkRead marca una alerta como leída.
func (uc *AlertUseCase) MarkRead(ctx context.Context, orgID, id string) error {
	if err := uc.ownedByOrg(ctx, orgID, id); err != nil {
		return err
	}
	return uc.alertRepo.MarkRead(ctx, id)
}

// Acknowledge registra el acuse de recibo de una alerta por un usuario.
func (uc *AlertUseCase) Acknowledge(ctx context.Context, orgID, id, profileID string) error {
	if err := uc.ownedByOrg(ctx, orgID, id); err != nil {
		return err
	}
	return uc.alertRepo.Acknowledge(ctx, id, profileID)
}

func (uc *AlertUseCase) ownedByOrg(ctx context.Context, orgID, id string) error {
	alert, err := uc.alertRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	if alert.OrganizationID != orgID {
		return domain.ErrForbidden
	}
	return nil
}
