package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/application/usecase"
	"github.com/jhoicas/stocklens-api/internal/domain"
)

// AlertHandler maneja las peticiones HTTP para alertas de inventario (protegido).
type AlertHandler struct {
	uc *usecase.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *usecase.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas
// @Description  Más recientes primero; con ?unread=true solo las no leídas.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        unread  query  bool  false  "Solo no leídas"
// @Param        limit   query  int   false  "Límite"  default(50)
// @Success      200     {array}  dto.AlertResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	out, err := h.uc.List(c.Context(), orgID, c.QueryBool("unread", false), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar alerta como leída
// @Tags         alerts
// @Security     Bearer
// @Param        id  path  string  true  "ID de la alerta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/read [post]
func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.MarkRead(c.Context(), orgID, id); err != nil {
		return alertError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Acknowledge godoc
// @Summary      Atender alerta
// @Description  Registra el perfil que atiende la alerta y la marca como leída.
// @Tags         alerts
// @Security     Bearer
// @Param        id  path  string  true  "ID de la alerta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/acknowledge [post]
func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Acknowledge(c.Context(), orgID, id, GetUserID(c)); err != nil {
		return alertError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func alertError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la alerta pertenece a otra organización"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
