package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFileType  = errors.New("only PDF files are allowed")
	ErrPayloadTooLarge  = errors.New("payload too large")
	ErrExtractionFailed = errors.New("text extraction failed")
	ErrDocumentNotFound = errors.New("document not found")
	ErrAnswerGeneration = errors.New("answer generation failed")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
