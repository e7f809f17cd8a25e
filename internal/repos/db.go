package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite admits one writer; a single pooled connection also keeps
	// :memory: databases from resetting per connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed reference data if DB is empty (puntos de venta, materias, papel)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Libros
CREATE TABLE IF NOT EXISTS libros(
  id_libro INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL,
  precio NUMERIC NOT NULL DEFAULT 0,
  paginas_por_libro INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_libros_nombre ON libros(LOWER(nombre));

-- Materias primas
CREATE TABLE IF NOT EXISTS materias_primas(
  id_mp INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL
);

-- Composicion: consumo de materia prima por unidad de libro.
-- Duplicados (id_libro, id_mp) son posibles; no hay indice unico.
CREATE TABLE IF NOT EXISTS libro_materia_prima(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  id_libro INTEGER NOT NULL REFERENCES libros(id_libro),
  id_mp INTEGER NOT NULL REFERENCES materias_primas(id_mp),
  cantidad NUMERIC NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_lmp_libro ON libro_materia_prima(id_libro);

-- Puntos de venta (solo lectura desde la API)
CREATE TABLE IF NOT EXISTS puntos_venta(
  id_punto_venta INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL
);

-- Inventario por punto de venta. Sin indice unico en (id_libro,
-- id_punto_venta): el par se mantiene unico por la logica de
-- leer-antes-de-escribir, no por el esquema.
CREATE TABLE IF NOT EXISTS inventario_pv(
  id_inventario INTEGER PRIMARY KEY AUTOINCREMENT,
  id_libro INTEGER NOT NULL REFERENCES libros(id_libro),
  id_punto_venta INTEGER NOT NULL REFERENCES puntos_venta(id_punto_venta),
  stock INTEGER NOT NULL DEFAULT 0,
  stock_minimo INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_inventario_libro ON inventario_pv(id_libro);
CREATE INDEX IF NOT EXISTS idx_inventario_pv    ON inventario_pv(id_punto_venta);

-- Papel (referencia, solo lectura)
CREATE TABLE IF NOT EXISTS papel(
  id_papel INTEGER PRIMARY KEY AUTOINCREMENT,
  paginas INTEGER NOT NULL,
  nombre TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM puntos_venta`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting puntos de venta / materias primas / papel")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO puntos_venta(nombre) VALUES
	  ('Sede Centro'),
	  ('Sede Norte'),
	  ('Sede Envigado')`)

	tx.MustExec(`INSERT INTO materias_primas(nombre) VALUES
	  ('Papel bond'),
	  ('Tinta negra'),
	  ('Carton para tapa'),
	  ('Pegamento')`)

	tx.MustExec(`INSERT INTO papel(paginas, nombre) VALUES
	  (100, 'Bolsillo'),
	  (250, 'Estandar'),
	  (500, 'Tomo grande')`)

	return tx.Commit()
}
