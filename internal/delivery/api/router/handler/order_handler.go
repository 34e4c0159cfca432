package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	proofFormField = "proof"
	emailFormField = "email"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC   usecase.OrderUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// OrderHandler serves the public order confirmation surface.
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:   params.OrderUC,
		qrcodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// GetOrder handles GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// GetQRCode handles GET /api/v1/orders/:id/qrcode and returns a PNG of the confirmation link.
func (h *OrderHandler) GetQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	url, err := h.orderUC.ConfirmationURL(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrcodeSvc.GeneratePNG(url)
	if err != nil {
		return errors.Wrap(err, "generate order qr code")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// SubmitPaymentProof handles POST /api/v1/orders/:id/payment-proof (multipart form, file field "proof").
// The content type is sniffed from the file bytes, never taken from the client.
func (h *OrderHandler) SubmitPaymentProof(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.PaymentProofInput{
		Email: strings.TrimSpace(c.FormValue(emailFormField)),
	}

	fileHeader, err := c.FormFile(proofFormField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// Reported by the usecase after the order and payment method checks.
	case err != nil:
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	default:
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "open uploaded proof")
		}
		defer file.Close()

		contentType, err := sniffContentType(file)
		if err != nil {
			return errors.Wrap(err, "read uploaded proof")
		}

		input.Filename = fileHeader.Filename
		input.ContentType = contentType
		input.Size = fileHeader.Size
		input.Content = file
	}

	order, err := h.orderUC.SubmitPaymentProof(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// sniffContentType detects the media type from the leading bytes and rewinds the file.
func sniffContentType(file io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", errors.WithStack(err)
	}

	return mtype.String(), nil
}
