package benchmarks_test

import (
	"encoding/json"
	"testing"

	jayson "github.com/reoring/jayson"
	"github.com/reoring/jayson/transform"
	"github.com/reoring/jayson/value"
)

func benchBytes(b *testing.B, data []byte) {
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
}

func Benchmark_Decode_stdlib_Small(b *testing.B) {
	data := smallUserJSON()
	benchBytes(b, data)
	for i := 0; i < b.N; i++ {
		var v map[string]any
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Decode_jayson_Small(b *testing.B) {
	data := smallUserJSON()
	benchBytes(b, data)
	for i := 0; i < b.N; i++ {
		if _, err := value.Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Decode_jayson_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(hugeN, hugeK)
	benchBytes(b, data)
	for i := 0; i < b.N; i++ {
		if _, err := value.Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Decode_jayson_HugeArray_Enforced(b *testing.B) {
	data := generateHugeJSONArray(hugeN, hugeK)
	opt := value.DecodeOptions{MaxDepth: 16, RejectDuplicateKeys: true}
	benchBytes(b, data)
	for i := 0; i < b.N; i++ {
		if _, err := value.Decode(data, opt); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Decode_jayson_DeepNested(b *testing.B) {
	data := generateDeepNested(64)
	benchBytes(b, data)
	for i := 0; i < b.N; i++ {
		if _, err := value.Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Decode_jayson_YAML(b *testing.B) {
	data := toYAML(hugeN)
	benchBytes(b, data)
	for i := 0; i < b.N; i++ {
		if _, err := value.DecodeYAML(data, value.DecodeOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_DecodeAndValidate_jayson_HugeArray(b *testing.B) {
	s := arraySchema(b)
	data := generateHugeJSONArray(hugeN, hugeK)
	benchBytes(b, data)
	for i := 0; i < b.N; i++ {
		if _, res := jayson.DecodeAndValidate(s, data, jayson.ValidateOpt{}); !res.Valid {
			b.Fatal(res.Err())
		}
	}
}

func Benchmark_Infer_HugeArray(b *testing.B) {
	v, err := value.Parse(generateHugeJSONArray(hugeN, hugeK))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = jayson.Infer(v, true)
	}
}

func Benchmark_Transform_SortThenFilter_HugeArray(b *testing.B) {
	v, err := value.Parse(generateHugeJSONArray(hugeN, hugeK))
	if err != nil {
		b.Fatal(err)
	}
	sort := transform.Sort{Field: "name", Direction: transform.Desc}
	filter := transform.Filter{Field: "age", Operator: transform.Gt, Value: value.Int(hugeN / 2)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := transform.ApplyValue(v, sort)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := transform.ApplyValue(out, filter); err != nil {
			b.Fatal(err)
		}
	}
}

// The fixtures must satisfy their own schema, or the benchmarks above stop
// at the first iteration.
func TestFixturesAreValid(t *testing.T) {
	res := jayson.ValidateJSON([]byte(`{"type":"array","items":`+userSchema+`}`), generateHugeJSONArray(10, 2), jayson.ValidateOpt{})
	if !res.Valid {
		t.Fatal(res.Err())
	}
	y, err := value.DecodeYAML(toYAML(3), value.DecodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if res := jayson.Validate(y, arraySchema(t)); !res.Valid {
		t.Fatal(res.Err())
	}
}
