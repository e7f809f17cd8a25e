package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "libreria/internal/log"
	"libreria/internal/repos"
	"libreria/internal/services"
	"libreria/internal/validate"
)

type LibroHandler struct {
	Libros *services.LibroService
}

// POST /libros/
func (h *LibroHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Nombre          string                    `json:"nombre"`
		Precio          float64                   `json:"precio"`
		PaginasPorLibro int                       `json:"paginas_por_libro"`
		Materias        []services.MateriaEntrada `json:"materias"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "cuerpo invalido"})
	}
	nombre, ok := validate.Nombre(req.Nombre)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "nombre invalido"})
	}

	libro, err := h.Libros.Create(nombre, req.Precio, req.PaginasPorLibro, req.Materias)
	if err != nil {
		return fail(c, "libros.create.fail", err)
	}
	applog.Audit(c, "libros.create", map[string]any{"id_libro": libro.ID, "materias": len(req.Materias)})
	return c.Status(fiber.StatusCreated).JSON(libro)
}

// GET /libros/?q=
func (h *LibroHandler) List(c *fiber.Ctx) error {
	q := validate.Q(c.Query("q"))
	libros, err := h.Libros.List(q)
	if err != nil {
		return fail(c, "libros.list.fail", err)
	}
	return c.JSON(libros)
}

// GET /libros/:id
func (h *LibroHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "id invalido"})
	}
	libro, err := h.Libros.Get(id)
	if err != nil {
		return fail(c, "libros.get.fail", err)
	}
	return c.JSON(libro)
}

// GET /libros/:id/materias
func (h *LibroHandler) Materias(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "id invalido"})
	}
	materias, err := h.Libros.Materias(id)
	if err != nil {
		return fail(c, "libros.materias.fail", err)
	}
	return c.JSON(materias)
}

// PATCH /libros/:id — only the fields present in the body are applied.
func (h *LibroHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "id invalido"})
	}
	var patch repos.LibroPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "cuerpo invalido"})
	}

	libro, err := h.Libros.Update(id, patch)
	if err != nil {
		return fail(c, "libros.update.fail", err)
	}
	applog.Audit(c, "libros.update", map[string]any{"id_libro": id})
	return c.JSON(libro)
}

// DELETE /libros/:id
func (h *LibroHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "id invalido"})
	}
	if err := h.Libros.Delete(id); err != nil {
		return fail(c, "libros.delete.fail", err)
	}
	applog.Audit(c, "libros.delete", map[string]any{"id_libro": id})
	return c.SendStatus(fiber.StatusNoContent)
}
