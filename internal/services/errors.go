package services

import "errors"

// NotFound errors, one per referenced entity. Messages match the API detail
// strings the front-end already expects.
var (
	ErrLibroNoExiste      = errors.New("Libro no existe")
	ErrLibroNoEncontrado  = errors.New("Libro no encontrado")
	ErrPuntoVentaNoExiste = errors.New("Punto de venta no existe")
	ErrInventarioNoExiste = errors.New("Inventario PV no existe")
)

// ErrStockNegativo rejects an adjustment that would drive stock below zero.
var ErrStockNegativo = errors.New("El stock no puede ser negativo")

// IsNotFound reports whether err is one of the missing-entity errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLibroNoExiste) ||
		errors.Is(err, ErrLibroNoEncontrado) ||
		errors.Is(err, ErrPuntoVentaNoExiste) ||
		errors.Is(err, ErrInventarioNoExiste)
}
