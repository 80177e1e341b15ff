package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// InventoryHandler mutación de stock y consultas del historial.
type InventoryHandler struct {
	stock *inventory.UpdateStockUseCase
	logs  *inventory.LogQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *inventory.UpdateStockUseCase, logs *inventory.LogQueryUseCase) *InventoryHandler {
	return &InventoryHandler{stock: stock, logs: logs}
}

// UpdateStock godoc
// @Summary      Fijar el stock de un producto (valor absoluto, no delta)
// @Description  Actualiza el stock y registra una entrada en el historial con
// @Description  el usuario del token, el stock previo y el delta resultante.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "stock (>= 0) y reason opcional"
// @Success      200   {object}  dto.StockUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [patch]
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	// Los params de Fiber son vistas zero-copy sobre el buffer de la petición;
	// este ID sobrevive en la entrada del historial, así que hay que copiarlo.
	id := utils.CopyString(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock es requerido"})
	}
	out, err := h.stock.UpdateStock(c.Context(), id, *in.Stock, GetUserID(c), in.Reason)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock no puede ser negativo"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListLogs godoc
// @Summary      Historial de mutaciones de stock
// @Description  Sin filtros devuelve todo (más reciente primero). Con ?days=N
// @Description  devuelve solo las entradas dentro de la ventana.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        days    query  int  false  "Ventana en días (> 0)"
// @Param        limit   query  int  false  "Límite (0 = sin límite)"
// @Param        offset  query  int  false  "Offset"
// @Success      200     {object}  dto.InventoryLogListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/inventory/logs [get]
func (h *InventoryHandler) ListLogs(c *fiber.Ctx) error {
	if days := c.QueryInt("days", 0); days != 0 {
		out, err := h.logs.ListWithinWindow(days)
		if err != nil {
			if err == domain.ErrInvalidInput {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days debe ser mayor que cero"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	out, err := h.logs.ListAll(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListLogsByProduct godoc
// @Summary      Historial de un producto, más reciente primero
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.InventoryLogListResponse
// @Router       /api/inventory/logs/product/{id} [get]
func (h *InventoryHandler) ListLogsByProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.logs.ListByProduct(id)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListLogsByUser godoc
// @Summary      Mutaciones hechas por un usuario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.InventoryLogListResponse
// @Router       /api/inventory/logs/user/{id} [get]
func (h *InventoryHandler) ListLogsByUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.logs.ListByUser(id)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
