package handlers

import (
	"github.com/gofiber/fiber/v2"

	"libreria/internal/repos"
)

type PapelHandler struct {
	Papel *repos.PapelRepo
}

// GET /papel/ — reference data, ordered by page count ascending.
func (h *PapelHandler) List(c *fiber.Ctx) error {
	papeles, err := h.Papel.List()
	if err != nil {
		return fail(c, "papel.list.fail", err)
	}
	return c.JSON(papeles)
}

type MateriaHandler struct {
	Materias *repos.MateriaRepo
}

// GET /materias_primas/ — the create-book form loads its inputs from here.
func (h *MateriaHandler) List(c *fiber.Ctx) error {
	materias, err := h.Materias.List()
	if err != nil {
		return fail(c, "materias.list.fail", err)
	}
	return c.JSON(materias)
}
