package benchmarks_test

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	"github.com/reoring/jayson/jsonschema"
)

const (
	hugeN = 2000
	hugeK = 8
)

const userSchema = `{
  "type": "object",
  "required": ["id", "name"],
  "properties": {
    "id": {"type": "string", "pattern": "^obj_[0-9]+$"},
    "name": {"type": "string", "minLength": 1},
    "age": {"type": "integer", "minimum": 0},
    "active": {"type": "boolean"},
    "meta": {"type": "object", "properties": {"score": {"type": "number"}}}
  }
}`

func mustSchema(tb testing.TB, src string) *jsonschema.Node {
	tb.Helper()
	n, _, err := jsonschema.Parse([]byte(src))
	if err != nil {
		tb.Fatalf("schema: %v", err)
	}
	return n
}

func arraySchema(tb testing.TB) *jsonschema.Node {
	return mustSchema(tb, `{"type":"array","items":`+userSchema+`}`)
}

func smallUserJSON() []byte { return []byte(`{"id":"obj_1","name":"alice","age":30}`) }

// generateHugeJSONArray returns [{"id":"obj_0","name":"n0","age":0,"active":true,"meta":{"score":0},"k0":"v0_0",...}, ...].
func generateHugeJSONArray(numObjects, extraFields int) []byte {
	var buf bytes.Buffer
	buf.Grow(numObjects * (64 + extraFields*16))
	buf.WriteByte('[')
	for i := 0; i < numObjects; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"id":"obj_%d","name":"n%d","age":%d,"active":%t,"meta":{"score":%d}`, i, i, i, i%2 == 0, i)
		for k := 0; k < extraFields; k++ {
			buf.WriteString(`,"k` + strconv.Itoa(k) + `":"v` + strconv.Itoa(i) + "_" + strconv.Itoa(k) + `"`)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func generateDeepNested(depth int) []byte {
	var buf bytes.Buffer
	for i := 0; i < depth; i++ {
		buf.WriteString(`{"a":`)
	}
	buf.WriteString("1")
	for i := 0; i < depth; i++ {
		buf.WriteByte('}')
	}
	return buf.Bytes()
}

// toYAML renders the huge array as a YAML block sequence of flow mappings.
func toYAML(numObjects int) []byte {
	var buf bytes.Buffer
	for i := 0; i < numObjects; i++ {
		fmt.Fprintf(&buf, "- {id: obj_%d, name: n%d, age: %d, active: %t, meta: {score: %d}}\n", i, i, i, i%2 == 0, i)
	}
	return buf.Bytes()
}
