package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type field struct {
	Name  string
	Value string
}

// requireFields writes a 400 response and returns false when any field is
// empty. Callers must stop handling the request on a false return.
func requireFields(c *gin.Context, fields ...field) bool {
	missing := missingNames(fields)
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"message":       "Missing required fields",
			"missingFields": missing,
		})
		return false
	}
	return true
}

// requireAnyField is the relaxed edit-mode check: it fails only when every
// field is empty, so partial updates pass.
func requireAnyField(c *gin.Context, fields ...field) bool {
	missing := missingNames(fields)
	if len(missing) == len(fields) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"message":       "At least one field is required for edit",
			"missingFields": missing,
		})
		return false
	}
	return true
}

// optional maps the empty string to nil for sparse update payloads. An
// empty field is treated as omitted, never written through.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func missingNames(fields []field) []string {
	missing := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
