package value_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eng "github.com/reoring/jayson/internal/engine"
	"github.com/reoring/jayson/value"
)

func TestDecode_PreservesMemberOrder(t *testing.T) {
	t.Parallel()

	v, err := value.Parse([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[1,"two",3.5]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, v.Keys())

	a, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, a.Keys())

	m, _ := v.Get("m")
	require.Equal(t, value.KindArray, m.Kind())
	assert.Equal(t, value.KindString, m.Items()[1].Kind())
	assert.Equal(t, 3.5, m.Items()[2].Float())
}

func TestDecode_DuplicateKeyLastWinsInFirstPosition(t *testing.T) {
	t.Parallel()

	v, err := value.Parse([]byte(`{"a":1,"b":2,"a":3}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"b":2}`, v.String())
}

func TestDecode_RejectDuplicateKeys(t *testing.T) {
	t.Parallel()

	_, err := value.Decode([]byte(`{"a":1,"a":3}`), value.DecodeOptions{RejectDuplicateKeys: true})
	var ie eng.IssueError
	require.True(t, errors.As(err, &ie), "got %v", err)
	assert.Equal(t, "a", ie.Path)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":    ``,
		"trailing": `{"a":1} {"b":2}`,
		"broken":   `{"a":`,
		"garbage":  `{nope}`,

		"missing comma":      `[1 2]`,
		"missing member sep": `{"a":1 "b":2}`,
		"missing colon":      `{"a" 1}`,
		"double colon":       `{"a"::1}`,
		"leading comma":      `[,1]`,
		"trailing comma":     `[1,]`,
		"trailing obj comma": `{"a":1,}`,
		"colon in array":     `["a":1]`,
		"nested missing sep": `{"a":[{"b":1}{"c":2}]}`,
	}
	for name, in := range cases {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := value.Parse([]byte(in))
			require.Error(t, err)
		})
	}
}

func TestDecode_Limits(t *testing.T) {
	t.Parallel()

	_, err := value.Decode([]byte(`[[[1]]]`), value.DecodeOptions{MaxDepth: 2})
	require.Error(t, err)
	_, err = value.Decode([]byte(`[[[1]]]`), value.DecodeOptions{MaxDepth: 3})
	require.NoError(t, err)
	_, err = value.Decode([]byte(`"0123456789"`), value.DecodeOptions{MaxBytes: 4})
	require.Error(t, err)
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	src := []byte(`
title: User
type: object
required: [name]
properties:
  name: {type: string, minLength: 1}
  age: {type: integer, maximum: 150}
  ratio: 0.5
  nothing: ~
  flag: yes
`)
	v, err := value.DecodeYAML(src, value.DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "type", "required", "properties"}, v.Keys())

	props, _ := v.Get("properties")
	assert.Equal(t, []string{"name", "age", "ratio", "nothing", "flag"}, props.Keys())
	age, _ := props.Get("age")
	maxv, _ := age.Get("maximum")
	assert.True(t, maxv.IsInteger())
	nothing, _ := props.Get("nothing")
	assert.True(t, nothing.IsNull())
	flag, _ := props.Get("flag")
	assert.Equal(t, value.KindString, flag.Kind(), "yaml.v3 resolves yes as a string")
}

func TestDecodeYAML_Aliases(t *testing.T) {
	t.Parallel()

	v, err := value.DecodeYAML([]byte("base: &b {x: 1}\nuse: *b\nlist: [*b, *b]\n"), value.DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, `{"base":{"x":1},"use":{"x":1},"list":[{"x":1},{"x":1}]}`, v.String())

	for name, in := range map[string]string{
		"self":     "a: &x [*x]\n",
		"mapping":  "a: &x {b: *x}\n",
		"indirect": "a: &x [{b: &y [*x]}, *y]\n",
	} {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := value.DecodeYAML([]byte(in), value.DecodeOptions{})
			var ie eng.IssueError
			require.True(t, errors.As(err, &ie), "got %v", err)
			assert.Contains(t, ie.Message, "refers to itself")
		})
	}
}

func TestDecodeYAML_AliasExpansionIsBounded(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 9; i++ {
		fmt.Fprintf(&b, "l%d: &l%d [", i, i)
		for k := 0; k < 10; k++ {
			if k > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "*l%d", i-1)
		}
		b.WriteString("]\n")
	}
	_, err := value.DecodeYAML([]byte(b.String()), value.DecodeOptions{})
	var ie eng.IssueError
	require.True(t, errors.As(err, &ie), "got %v", err)
	assert.Contains(t, ie.Message, "alias expansion exceeds")
}

func TestMarshalIndent_MatchesJSONStringify(t *testing.T) {
	t.Parallel()

	v, err := value.Parse([]byte(`{"a":[],"b":{},"c":[1,{"d":"<x>"}],"e":1e21,"f":0.0000001}`))
	require.NoError(t, err)
	want := `{
  "a": [],
  "b": {},
  "c": [
    1,
    {
      "d": "<x>"
    }
  ],
  "e": 1e+21,
  "f": 1e-7
}`
	assert.Equal(t, want, value.Pretty(v))
}

func TestMarshal_NonFiniteIsNull(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[null,null]", string(value.Marshal(value.Array(value.Number(math.NaN()), value.Number(math.Inf(1))))))
}

func TestToString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   value.Value
		want string
	}{
		{value.Null(), "null"},
		{value.Bool(true), "true"},
		{value.Number(1), "1"},
		{value.Number(2.5), "2.5"},
		{value.String("x"), "x"},
		{value.Array(value.Int(1), value.Null(), value.String("b")), "1,,b"},
		{value.Object(), "[object Object]"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.ToString())
	}
}

func TestToNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, value.Null().ToNumber())
	assert.Equal(t, 1.0, value.Bool(true).ToNumber())
	assert.Equal(t, 12.5, value.String(" 12.5\n").ToNumber())
	assert.Equal(t, 0.0, value.String("").ToNumber())
	assert.Equal(t, 255.0, value.String("0xff").ToNumber())
	assert.Equal(t, 7.0, value.Array(value.String("7")).ToNumber())
	assert.Equal(t, 0.0, value.Array().ToNumber())
	assert.True(t, math.IsNaN(value.String("abc").ToNumber()))
	assert.True(t, math.IsNaN(value.String("1,2").ToNumber()))
	assert.True(t, math.IsNaN(value.Object().ToNumber()))
	assert.True(t, math.IsInf(value.String("-Infinity").ToNumber(), -1))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, _ := value.Parse([]byte(`{"a":1,"b":[true,null]}`))
	b, _ := value.Parse([]byte(`{"b":[true,null],"a":1.0}`))
	c, _ := value.Parse([]byte(`{"b":[true],"a":1}`))
	assert.True(t, value.Equal(a, b))
	assert.False(t, value.Equal(a, c))
}

func TestFromAny_SortsMapKeys(t *testing.T) {
	t.Parallel()

	v := value.FromAny(map[string]any{"b": 1, "a": []any{"x", nil, true}})
	assert.Equal(t, `{"a":["x",null,true],"b":1}`, v.String())
}

func TestObjectBuilder_ReplacesInPlace(t *testing.T) {
	t.Parallel()

	var b value.ObjectBuilder
	b.Set("x", value.Int(1))
	b.Set("y", value.Int(2))
	b.Set("x", value.Int(3))
	assert.Equal(t, `{"x":3,"y":2}`, b.Build().String())
	assert.Equal(t, 2, b.Len())
}
