package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	jayson "github.com/reoring/jayson"
	"github.com/reoring/jayson/samples"
	"github.com/reoring/jayson/transform"
	"github.com/reoring/jayson/value"
)

type transformFlags struct {
	sample     string
	descriptor string
	extract    []string
	filter     string
	operator   string
	value      string
	mapExpr    string
	sort       string
	direction  string
	locale     string
	fields     bool
}

// operation builds the single operation selected on the command line.
func (tf transformFlags) operation(cmd *cobra.Command) (transform.Operation, error) {
	var ops []transform.Operation
	changed := cmd.Flags().Changed

	if changed("op") {
		op, err := transform.ParseOperation([]byte(tf.descriptor))
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if changed("extract") {
		ops = append(ops, transform.Extract{Fields: tf.extract})
	}
	if changed("filter") {
		op, err := transform.ParseOperator(tf.operator)
		if err != nil {
			return nil, err
		}
		// Filter coerces both sides, so the typed text is used as a string.
		ops = append(ops, transform.Filter{Field: tf.filter, Operator: op, Value: value.String(tf.value)})
	}
	if changed("map") {
		ops = append(ops, transform.Map{Renames: transform.ParseMapExpression(tf.mapExpr)})
	}
	if changed("sort") {
		dir, err := transform.ParseDirection(tf.direction)
		if err != nil {
			return nil, err
		}
		ops = append(ops, transform.Sort{Field: tf.sort, Direction: dir, Locale: tf.locale})
	}

	switch len(ops) {
	case 0:
		return nil, errors.New("no operation: use one of --op, --extract, --filter, --map, --sort")
	case 1:
		return ops[0], nil
	}
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name()
	}
	return nil, fmt.Errorf("one operation at a time (got %s)", strings.Join(names, ", "))
}

func (a *app) transformCmd() *cobra.Command {
	var tf transformFlags
	cmd := &cobra.Command{
		Use:   "transform [data]",
		Short: "Extract, filter, map or sort an array of records",
		Long: `Transform applies one operation to the records of a document (a non-array
document is one record) and prints the resulting array.

  jayson transform users.json --extract id,name
  jayson transform users.json --filter age --operator gt --value 30
  jayson transform users.json --map "fullName: name, id"
  jayson transform users.json --sort name --direction desc --locale de
  jayson transform users.json --op '{"op":"filter","field":"active","operator":"eq","value":true}'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.read(argAt(args, 0), tf.sample, samples.KindData)
			if err != nil {
				return err
			}
			data, err := jayson.DecodeText(in.data, a.parseOpt(in))
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			if tf.fields {
				for _, f := range transform.DetectFields(data) {
					fmt.Fprintln(a.out, f)
				}
				return nil
			}

			op, err := tf.operation(cmd)
			if err != nil {
				return err
			}
			out, err := transform.ApplyValue(data, op)
			if err != nil {
				return err
			}
			a.log.Info("transformed", "op", op.Name(), "in", len(transform.Records(data)), "out", out.Len())
			fmt.Fprintln(a.out, value.Pretty(out))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&tf.sample, "sample", "", "use a built-in data document")
	f.StringVar(&tf.descriptor, "op", "", "JSON operation descriptor")
	f.StringSliceVar(&tf.extract, "extract", nil, "fields to keep (comma separated)")
	f.StringVar(&tf.filter, "filter", "", "field to filter on")
	f.StringVar(&tf.operator, "operator", "eq", "filter operator: eq, neq, gt, lt, contains")
	f.StringVar(&tf.value, "value", "", "filter comparison value")
	f.StringVar(&tf.mapExpr, "map", "", `rename expression "new: old, keep"`)
	f.StringVar(&tf.sort, "sort", "", "field to sort by")
	f.StringVar(&tf.direction, "direction", "asc", "sort direction: asc or desc")
	f.StringVar(&tf.locale, "locale", "", "collation locale for string sorting (BCP 47)")
	f.BoolVar(&tf.fields, "fields", false, "list the fields of the first record and exit")
	return cmd
}
