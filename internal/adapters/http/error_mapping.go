package httpadapter

import (
	"net/http"

	"github.com/kirillkom/pdf-chat-assistant/internal/core/domain"
)

// Client-facing messages are fixed: underlying causes stay in server logs and
// never reach the response body.
const (
	detailInvalidFileType  = "400: Only PDF files are allowed"
	detailPayloadTooLarge  = "File size exceeds the 10 MB limit"
	detailExtractionFailed = "An error occurred while processing the PDF"
	detailNotFound         = "PDF not found"
	detailGenerationFailed = "An error occurred while generating the response"
	detailUnexpected       = "An unexpected error occurred."
)

// mapError translates a domain error exactly once into its HTTP status and
// client-facing detail message.
func mapError(err error) (int, string) {
	switch {
	case domain.IsKind(err, domain.ErrInvalidFileType):
		return http.StatusBadRequest, detailInvalidFileType
	case domain.IsKind(err, domain.ErrPayloadTooLarge):
		return http.StatusBadRequest, detailPayloadTooLarge
	case domain.IsKind(err, domain.ErrExtractionFailed):
		return http.StatusInternalServerError, detailExtractionFailed
	case domain.IsKind(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, detailNotFound
	case domain.IsKind(err, domain.ErrAnswerGeneration):
		return http.StatusInternalServerError, detailGenerationFailed
	default:
		return http.StatusInternalServerError, detailUnexpected
	}
}
