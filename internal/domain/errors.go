package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrWorkerNotFound      = errors.New("trabajador no encontrado")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrUserIDAlreadyExists = errors.New("el userId ya está registrado en esta empresa")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente")
)

// InsufficientStockError identifica el primer producto que falló la validación
// de stock de un lote, con lo solicitado vs lo disponible. Se desempaqueta a
// ErrInsufficientStock vía errors.Is.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: solicitado %d, disponible %d",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
