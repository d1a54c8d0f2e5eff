// Package ginmw adapts the validating middleware to gin.
package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/middleware"
	"github.com/reoring/jayson/value"
)

// ValidateJSON checks the request body against schema and aborts with 400
// and the validation result when it fails.
func ValidateJSON(schema *jsonschema.Node, opts middleware.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, res := middleware.Check(c.Request.Body, schema, opts)
		if !res.Valid {
			c.Data(http.StatusBadRequest, "application/json", middleware.ErrorPayload(res))
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithDocument(c.Request.Context(), doc))
		c.Next()
	}
}

// GetDocument fetches the validated document from c.
func GetDocument(c *gin.Context) (value.Value, bool) {
	return middleware.DocumentFromContext(c.Request.Context())
}
