// Package errs defines the closed set of precondition errors returned by pfe.
//
// Every error carries a Kind plus the structured context that triggered it
// (document id, offending index, sizes, threshold). Match on the kind with
// errors.Is against the exported sentinels:
//
//	if errors.Is(err, errs.ErrSizeMismatch) {
//	    var e *errs.Error
//	    errors.As(err, &e)
//	    log.Printf("document %s: %d != %d", e.DocID, e.Expected, e.Actual)
//	}
package errs

import (
	"errors"
	"fmt"
)

// Kind enumerates the precondition failures.
type Kind uint8

const (
	KindUnknown           Kind = iota
	KindInvalidDocSize         // negative or unrepresentable document size
	KindInvalidElement         // cover index outside [0, docSize)
	KindSizeMismatch           // compared document covers differ in size
	KindDuplicateDocument      // document id already present in a cover
	KindDocumentNotFound       // document id missing on lookup
	KindSizeNotDefined         // no document size given for a document
	KindInsaneThreshold        // mining threshold at or below 1/N
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidDocSize:
		return "invalid_doc_size"
	case KindInvalidElement:
		return "invalid_element"
	case KindSizeMismatch:
		return "size_mismatch"
	case KindDuplicateDocument:
		return "duplicate_document"
	case KindDocumentNotFound:
		return "document_not_found"
	case KindSizeNotDefined:
		return "size_not_defined"
	case KindInsaneThreshold:
		return "insane_threshold"
	default:
		return "unknown"
	}
}

// Error is a precondition failure with structured context.
// Only the fields relevant to Kind are populated.
type Error struct {
	Kind Kind

	// DocID is the document the failure relates to, if any.
	DocID string

	// Index is the offending cover element (KindInvalidElement).
	Index int

	// Expected and Actual hold document sizes. For KindInvalidElement,
	// Expected is the document size the index was checked against.
	Expected int
	Actual   int

	// Threshold and Min describe a rejected mining threshold.
	Threshold float64
	Min       float64
}

// Error renders the failure with its context.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidDocSize:
		if e.DocID != "" {
			return fmt.Sprintf("invalid document size for %q: %d", e.DocID, e.Actual)
		}
		return fmt.Sprintf("invalid document size: %d", e.Actual)
	case KindInvalidElement:
		if e.DocID != "" {
			return fmt.Sprintf("invalid cover element for %q: index %d outside [0, %d)", e.DocID, e.Index, e.Expected)
		}
		return fmt.Sprintf("invalid cover element: index %d outside [0, %d)", e.Index, e.Expected)
	case KindSizeMismatch:
		if e.DocID != "" {
			return fmt.Sprintf("document sizes differ for %q: %d != %d", e.DocID, e.Expected, e.Actual)
		}
		return fmt.Sprintf("document sizes differ: %d != %d", e.Expected, e.Actual)
	case KindDuplicateDocument:
		return fmt.Sprintf("document %q already present in cover", e.DocID)
	case KindDocumentNotFound:
		return fmt.Sprintf("document %q not found in cover", e.DocID)
	case KindSizeNotDefined:
		return fmt.Sprintf("size not defined for document %q", e.DocID)
	case KindInsaneThreshold:
		return fmt.Sprintf("threshold %g is too low to obtain meaningful results (must exceed %g)", e.Threshold, e.Min)
	default:
		return "pfe: unknown error"
	}
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is. They carry no context.
var (
	ErrInvalidDocSize    = &Error{Kind: KindInvalidDocSize}
	ErrInvalidElement    = &Error{Kind: KindInvalidElement}
	ErrSizeMismatch      = &Error{Kind: KindSizeMismatch}
	ErrDuplicateDocument = &Error{Kind: KindDuplicateDocument}
	ErrDocumentNotFound  = &Error{Kind: KindDocumentNotFound}
	ErrSizeNotDefined    = &Error{Kind: KindSizeNotDefined}
	ErrInsaneThreshold   = &Error{Kind: KindInsaneThreshold}
)

// InvalidDocSize reports a document size that is negative or too large.
func InvalidDocSize(size int) *Error {
	return &Error{Kind: KindInvalidDocSize, Actual: size}
}

// InvalidElement reports a cover index outside [0, docSize).
func InvalidElement(index, docSize int) *Error {
	return &Error{Kind: KindInvalidElement, Index: index, Expected: docSize}
}

// SizeMismatch reports differing document sizes. docID may be empty when
// the comparison happens below the corpus level.
func SizeMismatch(docID string, expected, actual int) *Error {
	return &Error{Kind: KindSizeMismatch, DocID: docID, Expected: expected, Actual: actual}
}

// DuplicateDocument reports a document id added twice.
func DuplicateDocument(docID string) *Error {
	return &Error{Kind: KindDuplicateDocument, DocID: docID}
}

// DocumentNotFound reports a lookup of an absent document.
func DocumentNotFound(docID string) *Error {
	return &Error{Kind: KindDocumentNotFound, DocID: docID}
}

// SizeNotDefined reports indices given for a document without a size.
func SizeNotDefined(docID string) *Error {
	return &Error{Kind: KindSizeNotDefined, DocID: docID}
}

// InsaneThreshold reports a threshold at or below minimum.
func InsaneThreshold(threshold, minimum float64) *Error {
	return &Error{Kind: KindInsaneThreshold, Threshold: threshold, Min: minimum}
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// WithDocID returns err annotated with docID when err is an *Error that
// has no document id yet. Other errors are returned unchanged.
func WithDocID(err error, docID string) error {
	var e *Error
	if !errors.As(err, &e) || e.DocID != "" {
		return err
	}
	c := *e
	c.DocID = docID
	return &c
}
