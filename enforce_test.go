package jayson_test

import (
	"testing"

	jayson "github.com/reoring/jayson"
)

func issueOf(t *testing.T, res jayson.ValidationResult) jayson.ValidationError {
	t.Helper()
	if res.Valid || len(res.Errors) != 1 {
		t.Fatalf("expected a single error, got %+v", res)
	}
	return res.Errors[0]
}

func TestDecode_DuplicateKey_Error(t *testing.T) {
	opt := jayson.ParseOpt{Strictness: jayson.Strictness{OnDuplicateKey: jayson.Error}}
	res := jayson.ValidateJSON([]byte(`{}`), []byte(`{"a":1,"a":2}`), jayson.ValidateOpt{}, opt)
	is := issueOf(t, res)
	if is.Code != jayson.CodeParseError || is.Params["code"] != "duplicate_key" {
		t.Fatalf("expected duplicate_key parse error, got: %+v", is)
	}
	if is.Params["path"] != "a" {
		t.Fatalf("expected path=a, got: %v", is.Params["path"])
	}
}

func TestDecode_DuplicateKey_NestedPath(t *testing.T) {
	opt := jayson.ParseOpt{Strictness: jayson.Strictness{OnDuplicateKey: jayson.Error}}
	is := issueOf(t, jayson.ValidateJSON([]byte(`{}`), []byte(`[{"a":1,"a":2}]`), jayson.ValidateOpt{}, opt))
	if is.Params["path"] != "[0].a" {
		t.Fatalf("expected path=[0].a, got: %v", is.Params["path"])
	}
}

func TestDecode_DuplicateKey_YAML(t *testing.T) {
	opt := jayson.ParseOpt{Syntax: jayson.SyntaxYAML, Strictness: jayson.Strictness{OnDuplicateKey: jayson.Error}}
	if _, err := jayson.DecodeText([]byte("a: 1\nb:\n  c: 1\n  c: 2\n"), opt); err == nil {
		t.Fatalf("expected error for duplicate key")
	}
}

func TestDecode_DuplicateKey_IgnoreKeepsLast(t *testing.T) {
	v, err := jayson.DecodeText([]byte(`{"a":1,"a":2}`), jayson.ParseOpt{})
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != `{"a":2}` {
		t.Fatalf("expected last value to win, got %s", got)
	}
}

func TestDecode_MaxDepth_Exceeded(t *testing.T) {
	// depth = 3 for { a: { b: { c: 1 } } }
	data := []byte(`{"a":{"b":{"c":1}}}`)
	for _, syn := range []jayson.Syntax{jayson.SyntaxJSON, jayson.SyntaxYAML} {
		opt := jayson.ParseOpt{Syntax: syn, MaxDepth: 2}
		is := issueOf(t, jayson.ValidateJSON([]byte(`{}`), data, jayson.ValidateOpt{}, jayson.ParseOpt{}, opt))
		if is.Params["path"] != "a.b" {
			t.Fatalf("%v: expected path=a.b, got: %v", syn, is.Params["path"])
		}
		opt.MaxDepth = 3
		if res := jayson.ValidateJSON([]byte(`{}`), data, jayson.ValidateOpt{}, jayson.ParseOpt{}, opt); !res.Valid {
			t.Fatalf("%v: depth 3 should pass: %+v", syn, res)
		}
	}
}

func TestDecode_MaxBytes(t *testing.T) {
	opt := jayson.ParseOpt{MaxBytes: 8}
	if _, err := jayson.DecodeText([]byte(`{"a":"0123456789"}`), opt); err == nil {
		t.Fatalf("expected size error")
	}
	if _, err := jayson.DecodeText([]byte(`[1,2]`), opt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
