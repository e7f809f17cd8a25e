package services

import (
	"database/sql"

	"libreria/internal/domain"
	"libreria/internal/repos"
)

// InventarioService keeps per-(libro, punto de venta) stock counts.
//
// Add is an upsert with additive merge: the first call for a pair creates the
// record, later calls increment it. The pair is kept unique by looking up the
// record before writing; under concurrent adds for the same pair this
// check-then-act can insert a duplicate row or lose an increment. The store
// has no unique index or atomic insert-or-increment closing that window.
type InventarioService struct {
	Inv    *repos.InventarioRepo
	Libros *repos.LibroRepo
	PVs    *repos.PuntoVentaRepo
}

func NewInventarioService(inv *repos.InventarioRepo, libros *repos.LibroRepo, pvs *repos.PuntoVentaRepo) *InventarioService {
	return &InventarioService{Inv: inv, Libros: libros, PVs: pvs}
}

func (s *InventarioService) List() ([]domain.InventarioPV, error) {
	return s.Inv.ListAll()
}

// ListByPuntoVenta does not validate that the punto de venta exists; an
// unknown id just yields an empty list.
func (s *InventarioService) ListByPuntoVenta(pvID int64) ([]domain.InventarioPV, error) {
	return s.Inv.ListByPuntoVenta(pvID)
}

// Add registers stock arriving at a punto de venta. A negative quantity is
// accepted and nets against an existing record, unguarded.
func (s *InventarioService) Add(libroID, pvID int64, stock, stockMinimo int) (domain.InventarioPV, error) {
	if _, err := s.Libros.Get(libroID); err != nil {
		if err == sql.ErrNoRows {
			return domain.InventarioPV{}, ErrLibroNoExiste
		}
		return domain.InventarioPV{}, err
	}
	if _, err := s.PVs.Get(pvID); err != nil {
		if err == sql.ErrNoRows {
			return domain.InventarioPV{}, ErrPuntoVentaNoExiste
		}
		return domain.InventarioPV{}, err
	}

	existing, err := s.Inv.FindByLibroPV(libroID, pvID)
	switch err {
	case nil:
		if err := s.Inv.SetStock(existing.ID, existing.Stock+stock); err != nil {
			return domain.InventarioPV{}, err
		}
		return s.Inv.Get(existing.ID)
	case sql.ErrNoRows:
		id, err := s.Inv.Insert(libroID, pvID, stock, stockMinimo)
		if err != nil {
			return domain.InventarioPV{}, err
		}
		return s.Inv.Get(id)
	default:
		return domain.InventarioPV{}, err
	}
}

// Adjust applies a signed delta to one record. The candidate value is
// validated before any write, so a rejected adjustment leaves the stored
// stock untouched and no reader ever sees a negative value.
func (s *InventarioService) Adjust(id int64, delta int) (domain.InventarioPV, error) {
	inv, err := s.Inv.Get(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.InventarioPV{}, ErrInventarioNoExiste
		}
		return domain.InventarioPV{}, err
	}

	candidate := inv.Stock + delta
	if candidate < 0 {
		return domain.InventarioPV{}, ErrStockNegativo
	}
	if err := s.Inv.SetStock(id, candidate); err != nil {
		return domain.InventarioPV{}, err
	}

	inv.Stock = candidate
	return inv, nil
}
