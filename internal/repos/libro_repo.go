package repos

import (
	"strings"

	"libreria/internal/domain"

	"github.com/jmoiron/sqlx"
)

type LibroRepo struct{ db *sqlx.DB }

func NewLibroRepo(db *sqlx.DB) *LibroRepo { return &LibroRepo{db: db} }

// List returns books newest first, optionally filtered by a case-insensitive
// substring of nombre, each with the stock summed over every punto de venta.
func (r *LibroRepo) List(q string) ([]domain.LibroResumen, error) {
	where := ``
	args := []any{}
	if q != "" {
		where = `WHERE LOWER(l.nombre) LIKE ?`
		args = append(args, "%"+q+"%")
	}

	sql := `
	  SELECT
	    l.id_libro, l.nombre, l.precio,
	    COALESCE((SELECT SUM(i.stock) FROM inventario_pv i WHERE i.id_libro = l.id_libro), 0) AS stock_total
	  FROM libros l
	  ` + where + `
	  ORDER BY l.id_libro DESC`

	out := []domain.LibroResumen{}
	err := r.db.Select(&out, sql, args...)
	return out, err
}

func (r *LibroRepo) Get(id int64) (domain.Libro, error) {
	var l domain.Libro
	err := r.db.Get(&l, `
	  SELECT id_libro, nombre, precio, paginas_por_libro
	  FROM libros
	  WHERE id_libro = ?
	`, id)
	return l, err
}

func (r *LibroRepo) Insert(nombre string, precio float64, paginas int) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO libros(nombre, precio, paginas_por_libro)
	  VALUES (?, ?, ?)
	`, nombre, precio, paginas)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LibroPatch carries a partial update; nil fields are left untouched.
type LibroPatch struct {
	Nombre          *string  `json:"nombre"`
	Precio          *float64 `json:"precio"`
	PaginasPorLibro *int     `json:"paginas_por_libro"`
}

// Update applies only the fields present in the patch. Returns the number of
// rows touched (0 when the book does not exist, or the patch is empty).
func (r *LibroRepo) Update(id int64, p LibroPatch) (int64, error) {
	set := []string{}
	args := []any{}
	if p.Nombre != nil {
		set = append(set, "nombre = ?")
		args = append(args, *p.Nombre)
	}
	if p.Precio != nil {
		set = append(set, "precio = ?")
		args = append(args, *p.Precio)
	}
	if p.PaginasPorLibro != nil {
		set = append(set, "paginas_por_libro = ?")
		args = append(args, *p.PaginasPorLibro)
	}
	if len(set) == 0 {
		// Nothing to apply; report existence so empty patches still 404
		// on unknown ids.
		var n int64
		err := r.db.Get(&n, `SELECT COUNT(*) FROM libros WHERE id_libro = ?`, id)
		return n, err
	}

	args = append(args, id)
	res, err := r.db.Exec(`UPDATE libros SET `+strings.Join(set, ", ")+` WHERE id_libro = ?`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the book row only; composition and inventory rows that
// reference it are left behind.
func (r *LibroRepo) Delete(id int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM libros WHERE id_libro = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *LibroRepo) InsertMateria(idLibro, idMP int64, cantidad float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO libro_materia_prima(id_libro, id_mp, cantidad)
	  VALUES (?, ?, ?)
	`, idLibro, idMP, cantidad)
	return err
}

func (r *LibroRepo) Materias(idLibro int64) ([]domain.LibroMateria, error) {
	out := []domain.LibroMateria{}
	err := r.db.Select(&out, `
	  SELECT id_mp, cantidad
	  FROM libro_materia_prima
	  WHERE id_libro = ?
	  ORDER BY id
	`, idLibro)
	return out, err
}
