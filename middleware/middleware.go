// Package middleware validates JSON request bodies against a schema at HTTP
// boundaries. The net/http handler lives here; echo and gin adapters are
// separate modules under middleware/echo and middleware/gin.
package middleware

import (
	"context"
	"fmt"
	"io"
	"net/http"

	jayson "github.com/reoring/jayson"
	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/value"
)

type ctxKeyDocument struct{}

// ContextWithDocument attaches a validated request document to ctx.
func ContextWithDocument(ctx context.Context, doc value.Value) context.Context {
	return context.WithValue(ctx, ctxKeyDocument{}, doc)
}

// DocumentFromContext returns the document stored by ContextWithDocument.
func DocumentFromContext(ctx context.Context) (value.Value, bool) {
	v, ok := ctx.Value(ctxKeyDocument{}).(value.Value)
	return v, ok
}

// DefaultMaxBytes caps request bodies under DefaultParseOpt.
const DefaultMaxBytes = 1 << 20

// DefaultParseOpt returns the recommended options for HTTP JSON boundaries:
// duplicate keys are errors and bodies are capped at DefaultMaxBytes.
func DefaultParseOpt() jayson.ParseOpt {
	return jayson.ParseOpt{
		Strictness: jayson.Strictness{OnDuplicateKey: jayson.Error},
		MaxBytes:   DefaultMaxBytes,
	}
}

// Options configures the validating handlers. A zero ParseOpt is replaced by
// DefaultParseOpt.
type Options struct {
	ParseOpt    jayson.ParseOpt
	ValidateOpt jayson.ValidateOpt
}

func (o Options) parseOpt() jayson.ParseOpt {
	if o.ParseOpt == (jayson.ParseOpt{}) {
		return DefaultParseOpt()
	}
	return o.ParseOpt
}

// Check reads body and validates it against schema. When a size cap is set,
// at most one byte past it is read so oversized bodies fail without being
// buffered whole.
func Check(body io.Reader, schema *jsonschema.Node, opts Options) (value.Value, jayson.ValidationResult) {
	popt := opts.parseOpt()
	if popt.MaxBytes > 0 {
		body = io.LimitReader(body, popt.MaxBytes+1)
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return value.Null(), jayson.ValidationResult{
			Errors: jayson.Issues{jayson.RootPath().Issue(jayson.CodeParseError, fmt.Sprintf("reading body: %v", err))},
		}
	}
	return jayson.DecodeAndValidate(schema, b, opts.ValidateOpt, popt)
}

// ErrorPayload renders a failed result as the response body.
func ErrorPayload(res jayson.ValidationResult) []byte {
	return value.Marshal(res.ToValue())
}

// Handler returns net/http middleware that rejects bodies failing schema
// with 400 and the validation result as JSON. On success the document is
// available to next through DocumentFromContext.
func Handler(schema *jsonschema.Node, opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			doc, res := Check(r.Body, schema, opts)
			if !res.Valid {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write(ErrorPayload(res))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithDocument(r.Context(), doc)))
		})
	}
}
