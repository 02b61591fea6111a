package utils

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ParseRequestBody decodes a JSON body into request and validates it.
func ParseRequestBody(r *http.Request, request interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err)
		}
		return exceptions.ErrCannotParseJSON(err)
	}

	if err := json.Unmarshal(body, request); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	if err := ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// GetUserIDFromRequest reads the caller supplied user id header, if any.
func GetUserIDFromRequest(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(constvars.HeaderXUserID))
}
