package commands

import "oficina-criativa/internal/pkg/errs"

// Shared operation errors across command implementations
var (
	ErrDatabaseOperation = errs.New("database operation failed")
)
