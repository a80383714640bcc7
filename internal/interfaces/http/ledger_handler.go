package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cueros-api/internal/application/dto"
	"github.com/jhoicas/cueros-api/internal/application/ledger"
	"github.com/jhoicas/cueros-api/internal/application/report"
	"github.com/jhoicas/cueros-api/internal/domain"
	"github.com/jhoicas/cueros-api/pkg/logger"
)

// LedgerHandler resumen, saldos, estados de cuenta y exportes.
type LedgerHandler struct {
	ledger *ledger.LedgerUseCase
	report *report.ReportUseCase
	log    *logger.Logger
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(ledgerUC *ledger.LedgerUseCase, reportUC *report.ReportUseCase, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{ledger: ledgerUC, report: reportUC, log: log}
}

// Summary godoc
// @Summary      Stock y caja
// @Description  Si el almacén no responde devuelve ceros con degraded=true.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "PAGADO | IMPAGO"
// @Param        product       query  string  false  "cueros | sal"
// @Param        counterparty  query  string  false  "Nombre de la contraparte"
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/ledger/summary [get]
func (h *LedgerHandler) Summary(c *fiber.Ctx) error {
	var f dto.MovementFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.ledger.Summary(c.UserContext(), f)
	if errors.Is(err, domain.ErrInvalidInput) {
		return writeError(c, err)
	}
	if err != nil {
		h.log.Error().Err(err).Msg("resumen: almacén no disponible")
		return c.JSON(zeroSummary())
	}
	return c.JSON(out)
}

func zeroSummary() dto.SummaryResponse {
	return dto.SummaryResponse{
		StockWeightKg:    decimal.Zero,
		PayableUnpaid:    decimal.Zero,
		ReceivableUnpaid: decimal.Zero,
		Collected:        decimal.Zero,
		PaidOut:          decimal.Zero,
		ExpectedCash:     decimal.Zero,
		AvgCostPerKg:     decimal.Zero,
		Degraded:         true,
	}
}

// Balance godoc
// @Summary      Saldo de una contraparte
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre de la contraparte"
// @Success      200  {object}  dto.EntityBalanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/balances/{name} [get]
func (h *LedgerHandler) Balance(c *fiber.Ctx) error {
	out, err := h.ledger.EntityBalance(c.UserContext(), pathName(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Estado de cuenta
// @Description  Sin format devuelve JSON; xlsx, csv o pdf devuelven el archivo.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        name    path   string  true   "Nombre de la contraparte"
// @Param        format  query  string  false  "xlsx | csv | pdf"
// @Success      200  {object}  dto.StatementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/statements/{name} [get]
func (h *LedgerHandler) Statement(c *fiber.Ctx) error {
	name := pathName(c)
	if format := c.Query("format"); format != "" {
		f, err := h.report.ExportStatement(c.UserContext(), name, format)
		if err != nil {
			return writeError(c, err)
		}
		return sendFile(c, f)
	}
	out, err := h.ledger.Statement(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Rollup godoc
// @Summary      Resumen de todas las contrapartes
// @Description  Ordenado por saldo final descendente.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "xlsx | csv"
// @Success      200  {object}  dto.RollupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/rollup [get]
func (h *LedgerHandler) Rollup(c *fiber.Ctx) error {
	if format := c.Query("format"); format != "" {
		f, err := h.report.ExportRollup(c.UserContext(), format)
		if err != nil {
			return writeError(c, err)
		}
		return sendFile(c, f)
	}
	out, err := h.ledger.Rollup(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Contadores del sistema
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *LedgerHandler) Stats(c *fiber.Ctx) error {
	out, err := h.report.Stats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// pathName decodifica el nombre de la ruta ("Juan%20P%C3%A9rez").
func pathName(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func sendFile(c *fiber.Ctx, f *report.File) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", f.Name))
	return c.Send(f.Body)
}
