package repos

import (
	"libreria/internal/domain"

	"github.com/jmoiron/sqlx"
)

type MateriaRepo struct{ db *sqlx.DB }

func NewMateriaRepo(db *sqlx.DB) *MateriaRepo { return &MateriaRepo{db: db} }

func (r *MateriaRepo) List() ([]domain.MateriaPrima, error) {
	out := []domain.MateriaPrima{}
	err := r.db.Select(&out, `
	  SELECT id_mp, nombre
	  FROM materias_primas
	  ORDER BY id_mp
	`)
	return out, err
}
