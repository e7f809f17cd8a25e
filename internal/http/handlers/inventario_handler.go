package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "libreria/internal/log"
	"libreria/internal/services"
	"libreria/internal/validate"
)

type InventarioHandler struct {
	Inv *services.InventarioService
}

// GET /inventario-pv/
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	regs, err := h.Inv.List()
	if err != nil {
		return fail(c, "inventario.list.fail", err)
	}
	return c.JSON(regs)
}

// POST /inventario-pv/
// Upsert with additive merge: repeating the same (libro, pv) accumulates.
// The stock quantity is not bounded below, matching the consumers that send
// a negative value to net stock down.
func (h *InventarioHandler) Add(c *fiber.Ctx) error {
	var req struct {
		IDLibro      int64 `json:"id_libro"`
		IDPuntoVenta int64 `json:"id_punto_venta"`
		Stock        int   `json:"stock"`
		StockMinimo  int   `json:"stock_minimo"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "cuerpo invalido"})
	}

	inv, err := h.Inv.Add(req.IDLibro, req.IDPuntoVenta, req.Stock, req.StockMinimo)
	if err != nil {
		return fail(c, "inventario.add.fail", err)
	}
	applog.Audit(c, "inventario.add", map[string]any{
		"id_libro": req.IDLibro, "id_punto_venta": req.IDPuntoVenta, "stock": req.Stock,
	})
	return c.JSON(inv)
}

// POST /inventario-pv/:id/ajustar
func (h *InventarioHandler) Adjust(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "id invalido"})
	}
	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "cuerpo invalido"})
	}

	inv, err := h.Inv.Adjust(id, req.Delta)
	if err != nil {
		return fail(c, "inventario.adjust.fail", err)
	}
	applog.Audit(c, "inventario.adjust", map[string]any{"id_inventario": id, "delta": req.Delta})
	return c.JSON(inv)
}

// GET /inventario-pv/por-pv/:pv_id
// Unknown punto de venta ids are not rejected here; they just list empty.
func (h *InventarioHandler) ListByPuntoVenta(c *fiber.Ctx) error {
	pvID, ok := validate.ID(c.Params("pv_id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "id invalido"})
	}
	regs, err := h.Inv.ListByPuntoVenta(pvID)
	if err != nil {
		return fail(c, "inventario.listpv.fail", err)
	}
	return c.JSON(regs)
}
