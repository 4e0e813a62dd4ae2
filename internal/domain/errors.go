package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrInUse        = errors.New("el recurso está referenciado por otros registros")

	ErrInsufficientStock     = errors.New("stock insuficiente")
	ErrInactiveEmployee      = errors.New("el empleado no está activo")
	ErrPaymentMethodRequired = errors.New("se requiere un método de pago válido o marcar la venta a crédito")
	ErrInvalidTransition     = errors.New("transición de estado no permitida")
	ErrDuplicateCredit       = errors.New("la venta ya tiene un crédito asociado")

	ErrDayAlreadyOpen   = errors.New("ya existe un día abierto")
	ErrDayAlreadyExists = errors.New("el día de hoy ya fue abierto")
	ErrNoOpenDay        = errors.New("no hay un día abierto para hoy")
	ErrDayClosed        = errors.New("el día de la venta ya está cerrado")
	ErrUnclearedCredits = errors.New("hay créditos abiertos en las ventas del día")
	ErrDayHasSales      = errors.New("el día tiene ventas registradas")
	ErrDayHasCredits    = errors.New("el día tiene créditos registrados")

	ErrRoleTaken         = errors.New("ya existe un empleado con ese rol")
	ErrProtectedEmployee = errors.New("el empleado no puede modificarse ni eliminarse")
)

// StockError detalla la línea que no pudo reservarse. errors.Is(err, ErrInsufficientStock) es true.
type StockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s (disponible: %d, solicitado: %d)", e.ProductName, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// Kind clasifica un error para decidir cómo se expone al cliente.
type Kind int

const (
	// KindSystem fallo de infraestructura; la transacción se revirtió y es seguro reintentar.
	KindSystem Kind = iota
	// KindValidation error corregible por el cliente (4xx).
	KindValidation
	// KindConflict violación de unicidad o referencia; reenviar con otros datos.
	KindConflict
	// KindAuth credenciales o permisos.
	KindAuth
)

var (
	validationErrors = []error{
		ErrNotFound, ErrInvalidInput, ErrInsufficientStock, ErrInactiveEmployee,
		ErrPaymentMethodRequired, ErrInvalidTransition, ErrDuplicateCredit,
		ErrDayAlreadyOpen, ErrDayAlreadyExists, ErrNoOpenDay, ErrDayClosed,
		ErrUnclearedCredits, ErrDayHasSales, ErrDayHasCredits,
	}
	conflictErrors = []error{ErrDuplicate, ErrConflict, ErrInUse, ErrRoleTaken, ErrProtectedEmployee}
	authErrors     = []error{ErrUnauthorized, ErrForbidden}
)

// KindOf devuelve la categoría del error. Cualquier error no reconocido es de sistema.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindSystem
	case isAny(err, authErrors):
		return KindAuth
	case isAny(err, validationErrors):
		return KindValidation
	case isAny(err, conflictErrors):
		return KindConflict
	default:
		return KindSystem
	}
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
