package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/payment"
)

// PaymentHandler pagos a cuenta.
type PaymentHandler struct {
	uc *payment.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *payment.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pago a cuenta
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AccountPaymentRequest  true  "client_name, amount, concept, kind"
// @Success      201   {object}  dto.AccountPaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.AccountPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pagos a cuenta
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        client  query  string  false  "Nombre del cliente"
// @Success      200  {array}  dto.AccountPaymentResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("client"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Balances godoc
// @Summary      Saldo a cuenta por cliente
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AccountBalanceResponse
// @Router       /api/payments/balances [get]
func (h *PaymentHandler) Balances(c *fiber.Ctx) error {
	out, err := h.uc.Balances(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pago a cuenta
// @Tags         payments
// @Security     Bearer
// @Param        id   path  string  true  "ID del pago"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [delete]
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
