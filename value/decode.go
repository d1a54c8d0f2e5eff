package value

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/jayson/internal/engine"
	"github.com/reoring/jayson/source/gojson"
)

// DecodeOptions bounds the decoder. The zero value mirrors JSON.parse:
// unlimited nesting and the last duplicate key wins.
type DecodeOptions struct {
	// MaxDepth limits container nesting; 0 means unlimited.
	MaxDepth int
	// MaxBytes limits the input size; 0 means unlimited.
	MaxBytes int64
	// RejectDuplicateKeys fails when an object repeats a key.
	RejectDuplicateKeys bool
}

func (o DecodeOptions) enforce() eng.EnforceOptions {
	eo := eng.EnforceOptions{MaxDepth: o.MaxDepth}
	if o.RejectDuplicateKeys {
		eo.OnDuplicate = eng.DupError
	}
	return eo
}

func (o DecodeOptions) checkSize(data []byte) error {
	if o.MaxBytes > 0 && int64(len(data)) > o.MaxBytes {
		return eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: eng.CodeParseError, Path: "$", Message: fmt.Sprintf("input exceeds %d bytes", o.MaxBytes)}}
	}
	return nil
}

// ErrUnexpectedEnd is returned for empty or truncated input.
var ErrUnexpectedEnd = errors.New("unexpected end of JSON input")

// Parse decodes JSON text with default options.
func Parse(data []byte) (Value, error) { return Decode(data, DecodeOptions{}) }

// Decode decodes exactly one JSON value from data. Trailing non-whitespace
// input is an error.
func Decode(data []byte, opt DecodeOptions) (Value, error) {
	if err := opt.checkSize(data); err != nil {
		return Value{}, err
	}
	var src eng.TokenSource = gojson.NewBytes(data)
	if eo := opt.enforce(); eo.Enabled() {
		src = eng.WrapWithEnforcement(src, eo)
	}
	tok, err := src.NextToken()
	if err != nil {
		return Value{}, decodeErr(err)
	}
	v, err := decodeValue(src, tok)
	if err != nil {
		return Value{}, decodeErr(err)
	}
	if _, err := src.NextToken(); err == nil {
		return Value{}, errors.New("unexpected data after top-level value")
	} else if !errors.Is(err, io.EOF) {
		return Value{}, decodeErr(err)
	}
	// The tokenizer does not check where ',' and ':' appear.
	if !j.Valid(data) {
		return Value{}, syntaxErr(data)
	}
	return v, nil
}

func syntaxErr(data []byte) error {
	var discard any
	if err := j.Unmarshal(data, &discard); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return errors.New("invalid JSON: misplaced separator")
}

func decodeErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrUnexpectedEnd
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return ie
	}
	return fmt.Errorf("invalid JSON: %w", err)
}

func decodeValue(src eng.TokenSource, tok eng.Token) (Value, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return decodeObject(src)
	case eng.KindBeginArray:
		return decodeArray(src)
	case eng.KindString:
		return String(tok.String), nil
	case eng.KindNumber:
		f, err := strconv.ParseFloat(tok.Number, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Value{}, fmt.Errorf("invalid number %q", tok.Number)
		}
		if math.IsInf(f, 0) && !errors.Is(err, strconv.ErrRange) {
			return Value{}, fmt.Errorf("invalid number %q", tok.Number)
		}
		return Number(f), nil
	case eng.KindBool:
		return Bool(tok.Bool), nil
	case eng.KindNull:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected %s token", tok.Kind)
	}
}

func decodeObject(src eng.TokenSource) (Value, error) {
	var b ObjectBuilder
	for {
		tok, err := src.NextToken()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == eng.KindEndObject {
			return b.Build(), nil
		}
		if tok.Kind != eng.KindKey {
			return Value{}, fmt.Errorf("expected object key, got %s", tok.Kind)
		}
		vt, err := src.NextToken()
		if err != nil {
			return Value{}, err
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return Value{}, err
		}
		b.Set(tok.String, v)
	}
}

func decodeArray(src eng.TokenSource) (Value, error) {
	items := []Value{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == eng.KindEndArray {
			return Array(items...), nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
}
