package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// maxMultipartMemory caps the in-memory portion of multipart form parsing.
const maxMultipartMemory = 4 << 20 // 4 MB

// Form creates a form data binder for application/x-www-form-urlencoded and
// multipart/form-data content, the two encodings browsers use for HTML form
// submissions.
//
// It supports struct tags for custom field names:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"` - skips the field
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value fields (checkbox groups)
//   - Pointers for optional fields
//
// Example:
//
//	type ContactRequest struct {
//		Name    string `form:"name"`
//		Email   string `form:"email"`
//		Phone   string `form:"phone"`
//		Subject string `form:"subject"`
//		Message string `form:"message"`
//	}
//
//	var req ContactRequest
//	if err := binder.Form()(r, &req); err != nil { ... }
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected a form content type", ErrMissingContentType)
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		case "multipart/form-data":
			if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		default:
			return fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", r.Form, ErrInvalidForm)
	}
}
