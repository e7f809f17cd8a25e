package handlers

import (
	"libreria/internal/repos"
	"libreria/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	LibroHandler      *LibroHandler
	InventarioHandler *InventarioHandler
	PapelHandler      *PapelHandler
	MateriaHandler    *MateriaHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	libroRepo := repos.NewLibroRepo(db)
	invRepo := repos.NewInventarioRepo(db)
	pvRepo := repos.NewPuntoVentaRepo(db)
	papelRepo := repos.NewPapelRepo(db)
	materiaRepo := repos.NewMateriaRepo(db)

	libroSvc := services.NewLibroService(libroRepo)
	invSvc := services.NewInventarioService(invRepo, libroRepo, pvRepo)

	return &Deps{
		LibroHandler:      &LibroHandler{Libros: libroSvc},
		InventarioHandler: &InventarioHandler{Inv: invSvc},
		PapelHandler:      &PapelHandler{Papel: papelRepo},
		MateriaHandler:    &MateriaHandler{Materias: materiaRepo},
	}
}
