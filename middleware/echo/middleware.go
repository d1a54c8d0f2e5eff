// Package echomw adapts the validating middleware to echo.
package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/middleware"
	"github.com/reoring/jayson/value"
)

// ValidateJSON checks the request body against schema. Failures answer 400
// with the validation result; on success the document is stored in the
// request context.
func ValidateJSON(schema *jsonschema.Node, opts middleware.Options) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			doc, res := middleware.Check(c.Request().Body, schema, opts)
			if !res.Valid {
				return c.JSONBlob(http.StatusBadRequest, middleware.ErrorPayload(res))
			}
			ctx := middleware.ContextWithDocument(c.Request().Context(), doc)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetDocument fetches the validated document from c.
func GetDocument(c echo.Context) (value.Value, bool) {
	return middleware.DocumentFromContext(c.Request().Context())
}
