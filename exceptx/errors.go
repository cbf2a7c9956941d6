package exceptx

import (
	"net/http"

	"github.com/Abraxas-365/exceptkit/errx"
)

// Error registry for exceptx
var (
	exceptErrors = errx.NewRegistry("EXCEPTX")

	// Construction contract violations
	ErrAbstractKind   = exceptErrors.Register("ABSTRACT_KIND", errx.TypeContract, http.StatusInternalServerError, "Handleable error does not declare a concrete kind")
	ErrMissingHandler = exceptErrors.Register("MISSING_HANDLER", errx.TypeContract, http.StatusInternalServerError, "Handleable error kind does not supply a handler")
	ErrEmptyHandler   = exceptErrors.Register("EMPTY_HANDLER", errx.TypeContract, http.StatusInternalServerError, "Handleable error kind supplies an empty handler")
)

// IsContractViolation reports whether err was raised while constructing a
// mis-defined handleable error.
func IsContractViolation(err error) bool {
	return errx.IsType(err, errx.TypeContract)
}
