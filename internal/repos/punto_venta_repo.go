package repos

import (
	"libreria/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PuntoVentaRepo struct{ db *sqlx.DB }

func NewPuntoVentaRepo(db *sqlx.DB) *PuntoVentaRepo { return &PuntoVentaRepo{db: db} }

// Get returns sql.ErrNoRows when the punto de venta does not exist.
func (r *PuntoVentaRepo) Get(id int64) (domain.PuntoVenta, error) {
	var pv domain.PuntoVenta
	err := r.db.Get(&pv, `
	  SELECT id_punto_venta, nombre
	  FROM puntos_venta
	  WHERE id_punto_venta = ?
	`, id)
	return pv, err
}
