package handlers

import (
	"fmt"

	"productorders/internal/dto"
	"productorders/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	service *services.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		service: service,
	}
}

// RegisterRoutes registers the supplier routes with the Fiber app.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	supplierRoutes := router.Group("/suppliers")
	supplierRoutes.Get("/", h.HandleGetSuppliers)
	supplierRoutes.Get("/:id", h.HandleGetSupplierByID)
	supplierRoutes.Post("/", h.HandleCreateSupplier)
	supplierRoutes.Put("/:id", h.HandleUpdateSupplier)
	supplierRoutes.Delete("/:id", h.HandleDeleteSupplier)
}

// HandleGetSuppliers retrieves all suppliers.
func (h *SupplierHandler) HandleGetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, "Could not retrieve suppliers", err)
	}
	return c.JSON(suppliers)
}

// HandleGetSupplierByID retrieves a single supplier by its ID.
func (h *SupplierHandler) HandleGetSupplierByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid supplier id", err)
	}
	supplier, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, fmt.Sprintf("Could not retrieve supplier %d", id), err)
	}
	return c.JSON(supplier)
}

// HandleCreateSupplier creates a new supplier. A JSON null body is passed
// through to the service as a nil view.
func (h *SupplierHandler) HandleCreateSupplier(c *fiber.Ctx) error {
	var view *dto.SupplierView
	if err := c.BodyParser(&view); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	created, err := h.service.Save(c.UserContext(), view)
	if err != nil {
		return respondError(c, "Could not create supplier", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateSupplier overwrites an existing supplier.
func (h *SupplierHandler) HandleUpdateSupplier(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid supplier id", err)
	}
	var view *dto.SupplierView
	if err := c.BodyParser(&view); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	updated, err := h.service.Update(c.UserContext(), view, id)
	if err != nil {
		return respondError(c, fmt.Sprintf("Could not update supplier %d", id), err)
	}
	return c.JSON(updated)
}

// HandleDeleteSupplier removes a supplier. Products that reference it are
// left in place.
func (h *SupplierHandler) HandleDeleteSupplier(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid supplier id", err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, fmt.Sprintf("Could not delete supplier %d", id), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
