package pfe

import (
	"errors"

	"github.com/hupe1980/pfe/errs"
)

// Precondition errors. Match them with errors.Is; use errors.As with
// *errs.Error for the structured context.
var (
	ErrInvalidDocSize    = errs.ErrInvalidDocSize
	ErrInvalidElement    = errs.ErrInvalidElement
	ErrSizeMismatch      = errs.ErrSizeMismatch
	ErrDuplicateDocument = errs.ErrDuplicateDocument
	ErrDocumentNotFound  = errs.ErrDocumentNotFound
	ErrSizeNotDefined    = errs.ErrSizeNotDefined
	ErrInsaneThreshold   = errs.ErrInsaneThreshold
)

// ErrNilConfig is returned by the config-driven entry points when no
// configuration is given.
var ErrNilConfig = errors.New("pfe: nil config")

// KindOf returns the kind of a precondition error, or errs.KindUnknown.
func KindOf(err error) errs.Kind {
	return errs.KindOf(err)
}
