package domain

import "errors"

// Errores de dominio - se usan en todas las capas de la aplicación

// Van errors
var (
	ErrVanNotFound      = errors.New("van not found")
	ErrVanAlreadyExists = errors.New("van already exists")
	ErrInvalidVIN       = errors.New("invalid vin")
	ErrInvalidMatricula = errors.New("invalid matricula")
	ErrInvalidVanData   = errors.New("invalid van data")
)

// Averia errors
var (
	ErrAveriaNotFound    = errors.New("averia not found")
	ErrInvalidCausa      = errors.New("invalid averia cause")
	ErrInvalidFecha      = errors.New("invalid date")
	ErrInvalidAveriaData = errors.New("invalid averia data")
)

// Search errors
var (
	ErrInvalidSearchQuery = errors.New("invalid search query")
)

// User errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserData = errors.New("invalid user data")
)

// Authorization errors
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrSessionRevoked = errors.New("session revoked")
	ErrWrongPassword  = errors.New("wrong password")
)

// General errors
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrBadRequest  = errors.New("bad request")
	ErrUnavailable = errors.New("storage unavailable")
	ErrInternal    = errors.New("internal server error")
)
