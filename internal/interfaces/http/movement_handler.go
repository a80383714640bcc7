package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/movement"
)

// MovementHandler compras y ventas de cueros y sal.
type MovementHandler struct {
	uc *movement.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos
// @Description  Más nuevo primero. Los filtros se combinan con AND.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "PAGADO | IMPAGO"
// @Param        product       query  string  false  "cueros | sal"
// @Param        counterparty  query  string  false  "Nombre de la contraparte"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var f dto.MovementFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar movimiento
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del movimiento"
// @Param        body  body  dto.MovementRequest  true  "Datos del movimiento"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Tags         movements
// @Security     Bearer
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteByCounterparty godoc
// @Summary      Eliminar movimientos de una contraparte
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        counterparty  query  string  true  "Nombre de la contraparte"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [delete]
func (h *MovementHandler) DeleteByCounterparty(c *fiber.Ctx) error {
	n, err := h.uc.DeleteByCounterparty(c.UserContext(), c.Query("counterparty"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: n})
}

// Valuate godoc
// @Summary      Calcular neto, total con IVA y promedio por unidad
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValuationRequest  true  "Cantidad, peso, precio e IVA"
// @Success      200   {object}  dto.ValuationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/valuation [post]
func (h *MovementHandler) Valuate(c *fiber.Ctx) error {
	var in dto.ValuationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Valuate(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
