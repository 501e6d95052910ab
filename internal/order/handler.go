package order

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the order read/update endpoints.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/orders", h.listOrders)
	app.Get("/api/orders/:id", h.getOrder)
	app.Patch("/api/orders/:id", h.updateOrder)
}

// RegisterDevRoutes adds the seeding endpoint, enabled when
// ALLOW_SEED_ORDERS=1. Real orders come from the external checkout; this
// exists so a fresh environment has something to look at.
func (h *Handler) RegisterDevRoutes(app *fiber.App) {
	app.Post("/dev/seed-orders", h.seedOrders)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	orders, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load orders"})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load order"})
	}
	return c.JSON(ord)
}

func (h *Handler) updateOrder(c *fiber.Ctx) error {
	req := new(UpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := h.service.Update(c.Params("id"), *req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		case errors.Is(err, ErrUnknownStatus), errors.Is(err, ErrInvalidTransition):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update order"})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) seedOrders(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_SEED_ORDERS") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("seeding not allowed")
	}

	var orders []Order
	if err := c.BodyParser(&orders); err != nil || len(orders) == 0 {
		orders = sampleOrders()
	}

	created, err := h.service.Seed(orders)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(created)
}

func sampleOrders() []Order {
	phone := "+91 98765 43210"
	return []Order{
		{
			CustomerName:  "Asha Verma",
			CustomerEmail: "asha.verma@example.com",
			CustomerPhone: &phone,
			CustomerAddress: &Address{
				FullName:   "Asha Verma",
				Street:     "14 MG Road",
				City:       "Pune",
				State:      "Maharashtra",
				PostalCode: "411001",
				Country:    "India",
			},
			Products: []ProductItem{
				{Name: "Ceramic Mug", Quantity: 2, Price: 24900},
				{Name: "Tea Sampler", Quantity: 1, Price: 49900},
			},
			Total:  99700,
			Status: StatusPending,
		},
		{
			CustomerName:  "Rohan Iyer",
			CustomerEmail: "rohan.iyer@example.com",
			Products: []ProductItem{
				{Name: "Desk Lamp", Quantity: 1, Price: 159900},
			},
			Total:  159900,
			Status: StatusShipped,
		},
	}
}
