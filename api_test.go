package jayson_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jayson "github.com/reoring/jayson"
	"github.com/reoring/jayson/codegen"
	"github.com/reoring/jayson/transform"
)

func TestValidateJSON_ParseErrorsAtRoot(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ schema, data, prefix string }{
		{`{"type":`, `{}`, "schema: "},
		{`{}`, `{"a":}`, "data: "},
		{`{}`, ``, "data: unexpected end"},
		{`{}`, `{} {}`, "data: unexpected data"},
	} {
		res := jayson.ValidateJSON([]byte(tc.schema), []byte(tc.data), jayson.ValidateOpt{})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "$", res.Errors[0].Path)
		assert.Equal(t, jayson.CodeParseError, res.Errors[0].Code)
		assert.True(t, strings.HasPrefix(res.Errors[0].Message, tc.prefix), res.Errors[0].Message)
	}
}

func TestValidateJSON_WarningsAndOptions(t *testing.T) {
	t.Parallel()

	schema := []byte(`{"type":"object","properties":{"a":{"oneOf":[]},"e":{"type":"string","format":"email"}}}`)
	res := jayson.ValidateJSON(schema, []byte(`{"a":1,"e":"bad"}`), jayson.ValidateOpt{})
	assert.True(t, res.Valid)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], `"oneOf" is not supported`)

	res = jayson.ValidateJSON(schema, []byte(`{"a":1,"e":"bad"}`), jayson.ValidateOpt{AssertFormats: true})
	assert.False(t, res.Valid)
}

func TestValidateJSON_DuplicateKeysAndDepth(t *testing.T) {
	t.Parallel()

	schema := []byte(`{"properties":{"a":{"type":"string"}}}`)
	data := []byte(`{"a":1,"a":"x"}`)

	assert.True(t, jayson.ValidateJSON(schema, data, jayson.ValidateOpt{}).Valid, "last duplicate wins")

	res := jayson.ValidateJSON(schema, data, jayson.ValidateOpt{}, jayson.ParseOpt{Strictness: jayson.Strictness{OnDuplicateKey: jayson.Error}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, jayson.CodeParseError, res.Errors[0].Code)
	assert.Contains(t, res.Errors[0].Message, "duplicate key")
	assert.Equal(t, "a", res.Errors[0].Params["path"])

	res = jayson.ValidateJSON(schema, []byte(`{"a":[[["x"]]]}`), jayson.ValidateOpt{}, jayson.ParseOpt{MaxDepth: 2})
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "max depth")
}

func TestValidateJSON_YAML(t *testing.T) {
	t.Parallel()

	schema := []byte("type: object\nrequired: [name]\nproperties:\n  name: {type: string}\n  age: {type: integer}\n")
	res := jayson.ValidateJSON(schema, []byte("age: 3.5\n"), jayson.ValidateOpt{}, jayson.ParseOpt{Syntax: jayson.SyntaxYAML})
	var got []string
	for _, e := range res.Errors {
		got = append(got, e.Path+" "+e.Code)
	}
	assert.Equal(t, []string{"name required", "age invalid_type"}, got)
}

func TestValidateJSON_SeparateDataSyntax(t *testing.T) {
	t.Parallel()

	schema := []byte(`{"type":"object","required":["n"],"properties":{"n":{"type":"integer"}}}`)
	res := jayson.ValidateJSON(schema, []byte("n: 2\n"), jayson.ValidateOpt{}, jayson.ParseOpt{}, jayson.ParseOpt{Syntax: jayson.SyntaxYAML})
	assert.True(t, res.Valid)

	res = jayson.ValidateJSON(schema, []byte("n: 2\n"), jayson.ValidateOpt{})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, jayson.CodeParseError, res.Errors[0].Code)
}

func TestTextBoundaries_RejectMisplacedSeparators(t *testing.T) {
	t.Parallel()

	arraySchema := []byte(`{"type":"array","items":{"type":"integer"}}`)
	for _, data := range []string{`[1 2]`, `{"a":1,}`, `{"a" 1}`, `[,1]`, `["a":1]`, `{"a"::1}`, `[1,]`, `{"a":1 "b":2}`} {
		res := jayson.ValidateJSON(arraySchema, []byte(data), jayson.ValidateOpt{})
		require.False(t, res.Valid, data)
		require.Len(t, res.Errors, 1, data)
		assert.Equal(t, "$", res.Errors[0].Path)
		assert.Equal(t, jayson.CodeParseError, res.Errors[0].Code)
		assert.True(t, strings.HasPrefix(res.Errors[0].Message, "data: invalid JSON"), res.Errors[0].Message)
	}

	res := jayson.ValidateJSON([]byte(`{"type":"object" "properties":{}}`), []byte(`{}`), jayson.ValidateOpt{})
	require.Len(t, res.Errors, 1)
	assert.True(t, strings.HasPrefix(res.Errors[0].Message, "schema: invalid JSON"), res.Errors[0].Message)

	got := jayson.TransformJSON([]byte(`[{"a":1,}]`), transform.Extract{Fields: []string{"a"}})
	assert.True(t, strings.HasPrefix(got, "Error: "), got)

	got = jayson.EmitTypeJSON([]byte(`{"title":"P","type":"object" "properties":{"x":{"type":"number"}}}`), codegen.Options{})
	assert.True(t, strings.HasPrefix(got, "// Error: "), got)

	assert.True(t, strings.HasPrefix(jayson.InferSchemaJSON([]byte(`{"a" 1}`), "", false), "Error: "))
	assert.True(t, strings.HasPrefix(jayson.GenerateTemplateJSON([]byte(`{"type":"object",}`), jayson.TemplateOpt{}), "Error: "))
}

func TestInferSchemaJSON(t *testing.T) {
	t.Parallel()

	got := jayson.InferSchemaJSON([]byte(`{"id":1,"email":"a@b.com"}`), "User", true)
	want := `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "User",
  "type": "object",
  "properties": {
    "id": {
      "type": "integer"
    },
    "email": {
      "type": "string",
      "format": "email"
    }
  },
  "required": [
    "id",
    "email"
  ]
}`
	assert.Equal(t, want, got)
	assert.True(t, strings.HasPrefix(jayson.InferSchemaJSON([]byte(`{`), "", false), "Error: "))
}

func TestGenerateTemplateJSON(t *testing.T) {
	t.Parallel()

	got := jayson.GenerateTemplateJSON([]byte(`{"type":"object","required":["at"],"properties":{"at":{"type":"string","format":"date-time"},"n":{"type":"array","items":{"type":"integer"}}}}`),
		jayson.TemplateOpt{IncludeOptional: true, Now: func() time.Time { return time.Unix(0, 0) }})
	assert.Equal(t, "{\n  \"at\": \"1970-01-01T00:00:00.000Z\",\n  \"n\": [\n    0\n  ]\n}", got)

	assert.True(t, strings.HasPrefix(jayson.GenerateTemplateJSON([]byte(`nope`), jayson.TemplateOpt{}), "Error: "))
}

func TestEmitTypeJSON(t *testing.T) {
	t.Parallel()

	got := jayson.EmitTypeJSON([]byte(`{"title":"Point","type":"object","required":["x"],"properties":{"x":{"type":"number"},"y":{"type":"number"}}}`), codegen.Options{})
	assert.Equal(t, "export interface Point {\n  x: number;\n  y?: number;\n}\n", got)

	bad := jayson.EmitTypeJSON([]byte(`{"title":`), codegen.Options{Target: codegen.JavaScript})
	assert.True(t, strings.HasPrefix(bad, "// Error: "), bad)
	assert.NotContains(t, bad, "\n")
}

func TestTransformJSON(t *testing.T) {
	t.Parallel()

	got := jayson.TransformJSON([]byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`), transform.Extract{Fields: []string{"id"}})
	assert.Equal(t, "[\n  {\n    \"id\": 1\n  },\n  {\n    \"id\": 2\n  }\n]", got)

	got = jayson.TransformJSON([]byte(`{"v":1}`), transform.Sort{Field: "v"})
	assert.Equal(t, "[\n  {\n    \"v\": 1\n  }\n]", got, "a single record is wrapped")

	assert.Equal(t, "[]", jayson.TransformJSON([]byte(`[]`), transform.Sort{Field: "v"}))
	assert.True(t, strings.HasPrefix(jayson.TransformJSON([]byte(`[`), transform.Extract{}), "Error: "))
	assert.True(t, strings.HasPrefix(jayson.TransformJSON([]byte(`[]`), transform.Sort{Field: "v", Direction: "sideways"}), "Error: "))
}

func TestDescribeJSON(t *testing.T) {
	t.Parallel()

	info, err := jayson.DescribeJSON([]byte(`{"title":"T","properties":{"a":{"type":"string"}}}`))
	require.NoError(t, err)
	assert.Equal(t, "T", info.Title)
	require.Len(t, info.Properties, 1)

	_, err = jayson.DescribeJSON([]byte(`{`))
	assert.Error(t, err)
}

func TestParseSyntaxHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, jayson.SyntaxYAML, jayson.SyntaxForPath("schema.YML"))
	assert.Equal(t, jayson.SyntaxJSON, jayson.SyntaxForPath("data.json"))
	s, err := jayson.ParseSyntax("yaml")
	require.NoError(t, err)
	assert.Equal(t, jayson.SyntaxYAML, s)
	_, err = jayson.ParseSyntax("toml")
	assert.Error(t, err)

	sev, err := jayson.ParseSeverity("error")
	require.NoError(t, err)
	assert.Equal(t, jayson.Error, sev)
}
