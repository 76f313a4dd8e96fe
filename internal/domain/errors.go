package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrInvalidCredentials cubre tanto "usuario no existe" como "password
// incorrecto": el caller nunca debe poder distinguirlos (anti-enumeración).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountInactive    = errors.New("cuenta inactiva")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmptyInvoice       = errors.New("la factura debe tener al menos una línea")
	ErrInvalidLineItem    = errors.New("línea de factura inválida")
)
