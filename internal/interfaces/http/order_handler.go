package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Asforaa/eBook-Store-API/internal/application/dto"
	"github.com/Asforaa/eBook-Store-API/internal/application/report"
	"github.com/Asforaa/eBook-Store-API/internal/application/usecase"
	"github.com/Asforaa/eBook-Store-API/internal/domain"
)

// OrderHandler maneja órdenes y consultas de ventas.
type OrderHandler struct {
	uc       *usecase.OrderUseCase
	reportUC *report.SalesReportUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, reportUC *report.SalesReportUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, reportUC: reportUC}
}

// Create godoc
// @Summary      Crear orden (compra de libros publicados)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "items: book_id + quantity"
// @Success      201   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BOOK_NOT_FOUND", Message: "algún libro del pedido no existe"})
		case errors.Is(err, domain.ErrBookNotAvailable):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "BOOK_NOT_AVAILABLE", Message: "el libro no está disponible para compra"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items es requerido y quantity debe ser >= 1"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMyOrders godoc
// @Summary      Órdenes del comprador autenticado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	out, err := h.uc.GetByUser(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Contrato heredado: lista vacía responde un mensaje, no [].
	if len(out) == 0 {
		return c.JSON(dto.MessageResponse{Message: "aún no tienes órdenes"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID (dueño o admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden (uuid)"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id, GetUserID(c), GetRole(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tienes acceso a esta orden"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AllSales godoc
// @Summary      Agregado de ventas por libro
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SalesRowResponse
// @Router       /api/orders/sales [get]
func (h *OrderHandler) AllSales(c *fiber.Ctx) error {
	out, err := h.uc.AllSales()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(out) == 0 {
		return c.JSON(dto.MessageResponse{Message: "no hay datos de ventas disponibles"})
	}
	return c.JSON(out)
}

// AuthorSales godoc
// @Summary      Agregado de ventas de un autor
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        authorId  path  int  true  "ID del autor"
// @Success      200  {array}  dto.SalesRowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/sales/{authorId} [get]
func (h *OrderHandler) AuthorSales(c *fiber.Ctx) error {
	authorID, err := parseID(c, "authorId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "authorId inválido"})
	}
	out, err := h.uc.AuthorSales(authorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "AUTHOR_NOT_FOUND", Message: "autor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(out) == 0 {
		return c.JSON(dto.MessageResponse{Message: "no hay datos de ventas para los libros de este autor"})
	}
	return c.JSON(out)
}

// SalesReport godoc
// @Summary      Descargar reporte de ventas en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/orders/sales/report [get]
func (h *OrderHandler) SalesReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reportUC.Download(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
