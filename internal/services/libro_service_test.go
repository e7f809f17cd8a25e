package services_test

import (
	"errors"
	"testing"

	"libreria/internal/repos"
	"libreria/internal/services"

	"github.com/jmoiron/sqlx"
)

func newLibroSvc(db *sqlx.DB) *services.LibroService {
	return services.NewLibroService(repos.NewLibroRepo(db))
}

func TestCreate_WithComposition(t *testing.T) {
	db := memdb(t)
	svc := newLibroSvc(db)

	libro, err := svc.Create("Don Quijote", 100, 500, []services.MateriaEntrada{
		{IDMateria: 1, Cantidad: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if libro.ID == 0 || libro.Nombre != "Don Quijote" || libro.PaginasPorLibro != 500 {
		t.Fatalf("bad created book: %+v", libro)
	}

	got, err := svc.Get(libro.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != libro.ID {
		t.Fatalf("want id %d, got %d", libro.ID, got.ID)
	}

	materias, err := svc.Materias(libro.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(materias) != 1 || materias[0].IDMateria != 1 || materias[0].Cantidad != 5 {
		t.Fatalf("composition not persisted: %+v", materias)
	}
}

func TestList_FilterAndStockTotal(t *testing.T) {
	db := memdb(t)
	svc := newLibroSvc(db)
	inv := newInvSvc(db)

	hola, err := svc.Create("Hola Mundo", 10, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	otro, err := svc.Create("Rayuela", 20, 250, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Stock across two puntos de venta for one book, none for the other.
	if _, err := inv.Add(hola.ID, 1, 4, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := inv.Add(hola.ID, 2, 6, 0); err != nil {
		t.Fatal(err)
	}

	// Substring match is case-insensitive and matches anywhere.
	res, err := svc.List("OLA")
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].ID != hola.ID {
		t.Fatalf("bad filter result: %+v", res)
	}
	if res[0].StockTotal != 10 {
		t.Fatalf("want stock_total 10, got %d", res[0].StockTotal)
	}

	// Unfiltered: newest first, zero stock_total when no inventory rows.
	all, err := svc.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].ID != otro.ID {
		t.Fatalf("want newest first, got %+v", all)
	}
	if all[0].StockTotal != 0 {
		t.Fatalf("want stock_total 0 for book with no inventory, got %d", all[0].StockTotal)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	db := memdb(t)
	svc := newLibroSvc(db)

	libro, err := svc.Create("El Aleph", 30, 200, nil)
	if err != nil {
		t.Fatal(err)
	}

	precio := 45.5
	got, err := svc.Update(libro.ID, repos.LibroPatch{Precio: &precio})
	if err != nil {
		t.Fatal(err)
	}
	if got.Precio != 45.5 {
		t.Fatalf("want precio 45.5, got %v", got.Precio)
	}
	if got.Nombre != "El Aleph" || got.PaginasPorLibro != 200 {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	if _, err := svc.Update(9999, repos.LibroPatch{Precio: &precio}); !errors.Is(err, services.ErrLibroNoEncontrado) {
		t.Fatalf("want ErrLibroNoEncontrado, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := memdb(t)
	svc := newLibroSvc(db)

	libro, err := svc.Create("Efímero", 5, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(libro.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(libro.ID); !errors.Is(err, services.ErrLibroNoEncontrado) {
		t.Fatalf("want ErrLibroNoEncontrado after delete, got %v", err)
	}
	if err := svc.Delete(libro.ID); !errors.Is(err, services.ErrLibroNoEncontrado) {
		t.Fatalf("want ErrLibroNoEncontrado for second delete, got %v", err)
	}
}
