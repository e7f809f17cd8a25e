package repos

import (
	"libreria/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PapelRepo struct{ db *sqlx.DB }

func NewPapelRepo(db *sqlx.DB) *PapelRepo { return &PapelRepo{db: db} }

func (r *PapelRepo) List() ([]domain.Papel, error) {
	out := []domain.Papel{}
	err := r.db.Select(&out, `
	  SELECT paginas, nombre
	  FROM papel
	  ORDER BY paginas
	`)
	return out, err
}
