package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrUpstream distingue un fallo real del servicio externo (red, timeout,
	// estado HTTP no exitoso) de un "producto desconocido" (ErrNotFound).
	ErrUpstream = errors.New("fallo consultando el servicio externo")
)
