package storage

import "errors"

var (
	// ErrNotFound distinguishes "row does not exist" from query failures.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateNumero maps the unique index on partes.numero_parte.
	// Two concurrent creates can read the same last number and compute the
	// same next one; the index is the correctness backstop and the create
	// service retries on this error.
	ErrDuplicateNumero = errors.New("numero_parte already exists")
)
