package domain

import "errors"

// Sentinel errors. The strings are part of the wire contract: they are
// returned verbatim in error responses.
var (
	ErrProductNotFound  = errors.New("Product not found")
	ErrCategoryNotFound = errors.New("Category not found")

	ErrProductNotCreated  = errors.New("Product not created")
	ErrCategoryNotCreated = errors.New("Category not created")

	ErrProductNotUpdated  = errors.New("Product not updated")
	ErrCategoryNotUpdated = errors.New("Category not updated")

	// ErrResponseNotConstructed signals that neither pagination query
	// produced a result set.
	ErrResponseNotConstructed = errors.New("Response could not be constructed")
)
