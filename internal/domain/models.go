package domain

type Libro struct {
	ID              int64   `db:"id_libro" json:"id_libro"`
	Nombre          string  `db:"nombre" json:"nombre"`
	Precio          float64 `db:"precio" json:"precio"`
	PaginasPorLibro int     `db:"paginas_por_libro" json:"paginas_por_libro"`
}

// LibroResumen is the listing shape: no page count, but the stock summed
// across every point of sale (0 when the book has no inventory rows).
type LibroResumen struct {
	ID         int64   `db:"id_libro" json:"id_libro"`
	Nombre     string  `db:"nombre" json:"nombre"`
	Precio     float64 `db:"precio" json:"precio"`
	StockTotal int     `db:"stock_total" json:"stock_total"`
}

type MateriaPrima struct {
	ID     int64  `db:"id_mp" json:"id_mp"`
	Nombre string `db:"nombre" json:"nombre"`
}

// LibroMateria records how much of a raw material one unit of a book
// consumes. Duplicate (libro, materia) pairs are possible; nothing dedupes.
type LibroMateria struct {
	IDMateria int64   `db:"id_mp" json:"id_mp"`
	Cantidad  float64 `db:"cantidad" json:"cantidad"`
}

type PuntoVenta struct {
	ID     int64  `db:"id_punto_venta" json:"id_punto_venta"`
	Nombre string `db:"nombre" json:"nombre"`
}

// InventarioPV is one stock record for a (book, point of sale) pair, joined
// with both display names for the API surface.
type InventarioPV struct {
	ID           int64  `db:"id_inventario" json:"id_inventario"`
	IDLibro      int64  `db:"id_libro" json:"id_libro"`
	IDPuntoVenta int64  `db:"id_punto_venta" json:"id_punto_venta"`
	Stock        int    `db:"stock" json:"stock"`
	StockMinimo  int    `db:"stock_minimo" json:"stock_minimo"`
	Libro        string `db:"libro" json:"libro"`
	PuntoVenta   string `db:"punto_venta" json:"punto_venta"`
}

type Papel struct {
	Paginas int    `db:"paginas" json:"paginas"`
	Nombre  string `db:"nombre" json:"nombre"`
}
