package handlers

import (
	"fmt"

	"productorders/internal/dto"
	"productorders/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/suppliers/:id", h.HandleGetProductSupplier)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid product id", err)
	}
	product, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, fmt.Sprintf("Could not retrieve product %d", id), err)
	}
	return c.JSON(product)
}

// HandleGetProductSupplier returns a product flattened together with its
// supplier. The :id parameter is the product's ID.
func (h *ProductHandler) HandleGetProductSupplier(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid product id", err)
	}
	view, err := h.service.GetProductSupplier(c.UserContext(), id)
	if err != nil {
		return respondError(c, fmt.Sprintf("Could not retrieve supplier of product %d", id), err)
	}
	return c.JSON(view)
}

// HandleCreateProduct creates a new product for an existing supplier.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var view *dto.ProductView
	if err := c.BodyParser(&view); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	created, err := h.service.Save(c.UserContext(), view)
	if err != nil {
		return respondError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct overwrites an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid product id", err)
	}
	var view *dto.ProductView
	if err := c.BodyParser(&view); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	updated, err := h.service.Update(c.UserContext(), view, id)
	if err != nil {
		return respondError(c, fmt.Sprintf("Could not update product %d", id), err)
	}
	return c.JSON(updated)
}

// HandleDeleteProduct removes a product. Deleting a missing product
// succeeds.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid product id", err)
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, fmt.Sprintf("Could not delete product %d", id), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
