package handler

import (
	"errors"

	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/thrackle-io/curve-estimator/internal/service"
	"github.com/thrackle-io/curve-estimator/pkg/curves"
)

// QuoteHandler serves the curve operation registry.
type QuoteHandler struct {
	BaseHandler
	service *service.QuoteService
}

func NewQuoteHandler(logger *slog.Logger, svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

// OperationInfo describes one registered operation.
type OperationInfo struct {
	Name  string   `json:"name"`
	Curve string   `json:"curve"`
	Args  []string `json:"args"`
	Doc   string   `json:"doc"`
}

// BatchRequest is the body of a batch quote.
type BatchRequest struct {
	Quotes []service.QuoteRequest `json:"quotes"`
}

// BatchResponse lists results in request order.
type BatchResponse struct {
	Results []service.QuoteResult `json:"results"`
}

// List returns the registered operations.
func (h *QuoteHandler) List() fiber.Handler {
	return func(c fiber.Ctx) error {
		ops := curves.Operations()
		out := make([]OperationInfo, 0, len(ops))
		for _, op := range ops {
			out = append(out, OperationInfo{Name: op.Name, Curve: op.Curve, Args: op.Args, Doc: op.Doc})
		}
		return c.JSON(out)
	}
}

// Quote evaluates one operation named by the path with query arguments and
// responds with the bare integer.
func (h *QuoteHandler) Quote() fiber.Handler {
	return func(c fiber.Ctx) error {
		op := c.Params("op")
		out, err := h.service.Quote(c.Context(), op, c.Queries())
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.SendString(out.String())
	}
}

// Batch evaluates a list of quotes. Per-quote failures are reported inline.
func (h *QuoteHandler) Batch() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req BatchRequest
		if err := c.Bind().JSON(&req); err != nil {
			h.logger.Debug("failed to bind batch body", "err", err)
			return ErrInvalidBody
		}

		results, err := h.service.QuoteBatch(c.Context(), req.Quotes)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(BatchResponse{Results: results})
	}
}

func (h *QuoteHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownOperation):
		return NewUnknownOperation(err)
	case errors.Is(err, service.ErrBatchTooLarge), errors.Is(err, curves.ErrInputParse):
		return NewInvalidInput(err)
	case errors.Is(err, curves.ErrArithmeticDomain), errors.Is(err, curves.ErrInvalidCurveState):
		return NewNoValidResult(err)
	default:
		h.logger.Error("quote failed", "err", err)
		return ErrEstimationFailedInternal
	}
}
