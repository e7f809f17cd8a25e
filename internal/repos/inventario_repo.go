package repos

import (
	"libreria/internal/domain"

	"github.com/jmoiron/sqlx"
)

type InventarioRepo struct{ db *sqlx.DB }

func NewInventarioRepo(db *sqlx.DB) *InventarioRepo { return &InventarioRepo{db: db} }

const inventarioSelect = `
	SELECT
	  i.id_inventario, i.id_libro, i.id_punto_venta, i.stock, i.stock_minimo,
	  l.nombre AS libro, p.nombre AS punto_venta
	FROM inventario_pv i
	JOIN libros l        ON l.id_libro = i.id_libro
	JOIN puntos_venta p  ON p.id_punto_venta = i.id_punto_venta`

// ListAll returns every record joined with book and punto de venta names.
func (r *InventarioRepo) ListAll() ([]domain.InventarioPV, error) {
	out := []domain.InventarioPV{}
	err := r.db.Select(&out, inventarioSelect+`
	ORDER BY i.id_inventario`)
	return out, err
}

func (r *InventarioRepo) ListByPuntoVenta(pvID int64) ([]domain.InventarioPV, error) {
	out := []domain.InventarioPV{}
	err := r.db.Select(&out, inventarioSelect+`
	WHERE i.id_punto_venta = ?
	ORDER BY i.id_inventario`, pvID)
	return out, err
}

// Get returns one enriched record. sql.ErrNoRows when absent.
func (r *InventarioRepo) Get(id int64) (domain.InventarioPV, error) {
	var inv domain.InventarioPV
	err := r.db.Get(&inv, inventarioSelect+`
	WHERE i.id_inventario = ?`, id)
	return inv, err
}

// FindByLibroPV looks up the record for an exact (libro, punto de venta)
// pair. sql.ErrNoRows when the pair has never been stocked.
func (r *InventarioRepo) FindByLibroPV(libroID, pvID int64) (domain.InventarioPV, error) {
	var inv domain.InventarioPV
	err := r.db.Get(&inv, inventarioSelect+`
	WHERE i.id_libro = ? AND i.id_punto_venta = ?`, libroID, pvID)
	return inv, err
}

func (r *InventarioRepo) Insert(libroID, pvID int64, stock, stockMinimo int) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO inventario_pv(id_libro, id_punto_venta, stock, stock_minimo)
	  VALUES (?, ?, ?, ?)
	`, libroID, pvID, stock, stockMinimo)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *InventarioRepo) SetStock(id int64, stock int) error {
	_, err := r.db.Exec(`
	  UPDATE inventario_pv SET stock = ? WHERE id_inventario = ?
	`, stock, id)
	return err
}
