package transform

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/jayson/value"
)

// descriptor is the JSON form of an operation:
//
//	{"op":"extract","fields":["id","name"]}
//	{"op":"filter","field":"age","operator":"gt","value":30}
//	{"op":"map","expression":"fullName: name, id"}
//	{"op":"map","renames":[{"new":"fullName","old":"name"}]}
//	{"op":"sort","field":"name","direction":"desc","locale":"en"}
type descriptor struct {
	Op         string         `json:"op"`
	Fields     []string       `json:"fields"`
	Field      string         `json:"field"`
	Operator   string         `json:"operator"`
	Value      *value.Value   `json:"value"`
	Expression string         `json:"expression"`
	Renames    []renameFields `json:"renames"`
	Direction  string         `json:"direction"`
	Locale     string         `json:"locale"`
}

type renameFields struct {
	New string `json:"new"`
	Old string `json:"old"`
}

// ParseOperation decodes a JSON operation descriptor. "transform" is accepted
// as an alias of "map".
func ParseOperation(data []byte) (Operation, error) {
	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("transform: invalid operation descriptor: %w", err)
	}
	switch strings.ToLower(d.Op) {
	case "extract":
		return Extract{Fields: d.Fields}, nil
	case "filter":
		if d.Field == "" {
			return nil, fmt.Errorf("transform: filter requires a field")
		}
		op, err := ParseOperator(d.Operator)
		if err != nil {
			return nil, fmt.Errorf("transform: %w", err)
		}
		f := Filter{Field: d.Field, Operator: op, Value: value.String("")}
		if d.Value != nil {
			f.Value = *d.Value
		}
		return f, nil
	case "map", "transform":
		m := Map{Renames: ParseMapExpression(d.Expression)}
		for _, r := range d.Renames {
			if r.New == "" {
				return nil, fmt.Errorf("transform: rename without a new key")
			}
			m.Renames = append(m.Renames, Rename{NewKey: r.New, OldKey: r.Old})
		}
		return m, nil
	case "sort":
		if d.Field == "" {
			return nil, fmt.Errorf("transform: sort requires a field")
		}
		dir, err := ParseDirection(d.Direction)
		if err != nil {
			return nil, fmt.Errorf("transform: %w", err)
		}
		return Sort{Field: d.Field, Direction: dir, Locale: d.Locale}, nil
	case "":
		return nil, fmt.Errorf("transform: missing \"op\"")
	}
	return nil, fmt.Errorf("transform: unknown operation %q", d.Op)
}
