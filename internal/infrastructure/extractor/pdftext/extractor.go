// Package pdftext extracts plain text from raw PDF bytes.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract returns the concatenated text of every page plus the page count.
// Empty text is a valid result; the caller decides whether to reject it.
func (e *Extractor) Extract(ctx context.Context, data []byte) (text string, pages int, err error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", 0, fmt.Errorf("extract pdf text: %w", err)
	}
	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", 0, fmt.Errorf("read pdf text: %w", err)
	}

	return string(raw), reader.NumPage(), nil
}
