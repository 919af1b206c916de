package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInUse        = errors.New("el recurso tiene registros asociados")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUnavailable  = errors.New("servicio no disponible")
	ErrCodeRejected = errors.New("código de descuento no válido")
	ErrSeasonClosed = errors.New("la temporada del concurso no está activa")
)

// ValidationError error de validación asociado a un campo de la entrada.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// DuplicateError indica qué clave única se repitió (ej. rut, codigo).
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("ya existe un registro con %s %q", e.Field, e.Value)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// Duplicate construye un DuplicateError.
func Duplicate(field, value string) error {
	return &DuplicateError{Field: field, Value: value}
}

// InUseError indica qué dependencia impide borrar el recurso.
type InUseError struct {
	Resource   string
	Dependents string
	Count      int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("no se puede eliminar %s: tiene %d %s asociados", e.Resource, e.Count, e.Dependents)
}

func (e *InUseError) Unwrap() error { return ErrInUse }

// InUse construye un InUseError.
func InUse(resource, dependents string, count int) error {
	return &InUseError{Resource: resource, Dependents: dependents, Count: count}
}
