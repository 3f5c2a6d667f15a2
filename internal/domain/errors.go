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
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUnauthorized = errors.New("no autorizado")
)

// ValidationError describe un campo faltante o malformado. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Message string
}

// NewValidationError construye un ValidationError con el mensaje público.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// TransactionError envuelve la causa de una transacción del ledger que no se confirmó.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transacción %s: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

// UploadError fallo (o timeout) al subir un archivo al almacenamiento externo.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("subida de archivo: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
