package jayson

import (
	"fmt"

	"github.com/reoring/jayson/internal/jsonpath"
)

// PathRef builds dot/bracket paths in a chain-safe way and creates issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	String() string
	Issue(code, msg string, kv ...any) ValidationError
}

// RootPath returns the path of the document root, rendered as "$".
func RootPath() PathRef { return pathRef("") }

type pathRef string

func (p pathRef) Field(name string) PathRef { return pathRef(jsonpath.Field(string(p), name)) }
func (p pathRef) Index(i int) PathRef       { return pathRef(jsonpath.Index(string(p), i)) }
func (p pathRef) String() string            { return jsonpath.Render(string(p)) }

func (p pathRef) Issue(code, msg string, kv ...any) ValidationError {
	var m map[string]any
	if len(kv) > 1 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return ValidationError{Path: p.String(), Code: code, Message: msg, Params: m}
}
