package services

import (
	"database/sql"
	"strings"

	"libreria/internal/domain"
	"libreria/internal/repos"
)

type MateriaEntrada struct {
	IDMateria int64   `json:"id_mp"`
	Cantidad  float64 `json:"cantidad"`
}

type LibroService struct {
	Libros *repos.LibroRepo
}

func NewLibroService(libros *repos.LibroRepo) *LibroService {
	return &LibroService{Libros: libros}
}

// Create inserts the book row first so it gets an id, then one composition
// row per entry. The two steps are not atomic: a failure in between leaves a
// book with no composition. Material ids are not checked and a material
// listed twice yields two rows.
func (s *LibroService) Create(nombre string, precio float64, paginas int, materias []MateriaEntrada) (domain.Libro, error) {
	id, err := s.Libros.Insert(nombre, precio, paginas)
	if err != nil {
		return domain.Libro{}, err
	}
	for _, m := range materias {
		if err := s.Libros.InsertMateria(id, m.IDMateria, m.Cantidad); err != nil {
			return domain.Libro{}, err
		}
	}
	return s.Libros.Get(id)
}

// List filters by a case-insensitive substring of nombre when q is not empty.
func (s *LibroService) List(q string) ([]domain.LibroResumen, error) {
	return s.Libros.List(strings.ToLower(q))
}

func (s *LibroService) Get(id int64) (domain.Libro, error) {
	l, err := s.Libros.Get(id)
	if err == sql.ErrNoRows {
		return domain.Libro{}, ErrLibroNoEncontrado
	}
	return l, err
}

func (s *LibroService) Update(id int64, patch repos.LibroPatch) (domain.Libro, error) {
	n, err := s.Libros.Update(id, patch)
	if err != nil {
		return domain.Libro{}, err
	}
	if n == 0 {
		return domain.Libro{}, ErrLibroNoEncontrado
	}
	return s.Libros.Get(id)
}

// Delete removes the book row only; composition and inventory rows stay
// behind, as the store does not cascade.
func (s *LibroService) Delete(id int64) error {
	n, err := s.Libros.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLibroNoEncontrado
	}
	return nil
}

func (s *LibroService) Materias(id int64) ([]domain.LibroMateria, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	return s.Libros.Materias(id)
}
