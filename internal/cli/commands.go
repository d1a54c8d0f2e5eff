package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	jayson "github.com/reoring/jayson"
	"github.com/reoring/jayson/codegen"
	"github.com/reoring/jayson/jsonschema"
	"github.com/reoring/jayson/samples"
	"github.com/reoring/jayson/value"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		schemaSample, dataSample string
		assertFormats, failFast  bool
	)
	cmd := &cobra.Command{
		Use:   "validate [schema] [data]",
		Short: "Validate a data document against a schema",
		Long: `Validate prints the result as JSON ({"valid", "errors", "warnings"}) and
exits 1 when the data does not conform. Malformed input is reported as a
single parse_error issue at "$".`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos := args
			next := func() string {
				if len(pos) == 0 {
					return ""
				}
				s := pos[0]
				pos = pos[1:]
				return s
			}
			var schemaArg, dataArg string
			if schemaSample == "" {
				schemaArg = next()
			}
			if dataSample == "" {
				dataArg = next()
			}
			if len(pos) > 0 {
				return fmt.Errorf("unexpected argument %q", pos[0])
			}

			schema, err := a.read(schemaArg, schemaSample, samples.KindSchema)
			if err != nil {
				return err
			}
			data, err := a.read(dataArg, dataSample, samples.KindData)
			if err != nil {
				return err
			}

			vopt := a.cfg.ValidateOpt()
			if cmd.Flags().Changed("assert-formats") {
				vopt.AssertFormats = assertFormats
			}
			vopt.FailFast = failFast

			res := jayson.ValidateJSON(schema.data, data.data, vopt, a.parseOpt(schema), a.parseOpt(data))
			a.warn(schema.name, res.Warnings)
			a.log.Info("validated", "schema", schema.name, "data", data.name, "valid", res.Valid, "errors", len(res.Errors))
			fmt.Fprintln(a.out, value.Pretty(res.ToValue()))
			if !res.Valid {
				return errInvalid
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&schemaSample, "schema-sample", "", "use a built-in schema: "+fmt.Sprint(samples.Names(samples.KindSchema)))
	f.StringVar(&dataSample, "data-sample", "", "use a built-in data document: "+fmt.Sprint(samples.Names(samples.KindData)))
	f.BoolVar(&assertFormats, "assert-formats", false, "check \"format\" on strings")
	f.BoolVar(&failFast, "fail-fast", false, "stop at the first error")
	return cmd
}

func (a *app) inferCmd() *cobra.Command {
	var (
		sample, title string
		allRequired   bool
	)
	cmd := &cobra.Command{
		Use:   "infer [data]",
		Short: "Infer a draft-07 schema from a sample document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.read(argAt(args, 0), sample, samples.KindData)
			if err != nil {
				return err
			}
			data, err := jayson.DecodeText(in.data, a.parseOpt(in))
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			doc := jayson.InferDocument(data, title, allRequired)
			fmt.Fprintln(a.out, value.Pretty(doc.ToValue()))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&sample, "sample", "", "use a built-in data document")
	f.StringVar(&title, "title", "", "schema title")
	f.BoolVar(&allRequired, "all-required", false, "mark every observed property required")
	return cmd
}

// schema reads and parses the schema operand, logging parser warnings.
func (a *app) schema(arg, sample string) (*jsonschema.Node, error) {
	in, err := a.read(arg, sample, samples.KindSchema)
	if err != nil {
		return nil, err
	}
	n, diag, err := jayson.ParseSchema(in.data, a.parseOpt(in))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.name, err)
	}
	a.warn(in.name, diag.Warnings())
	return n, nil
}

func (a *app) templateCmd() *cobra.Command {
	var (
		sample                       string
		useDefaults, includeOptional bool
	)
	cmd := &cobra.Command{
		Use:   "template [schema]",
		Short: "Generate an example document for a schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schema(argAt(args, 0), sample)
			if err != nil {
				return err
			}
			tpl := jayson.GenerateTemplate(s, jayson.TemplateOpt{UseDefaults: useDefaults, IncludeOptional: includeOptional})
			fmt.Fprintln(a.out, value.Pretty(tpl))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&sample, "sample", "", "use a built-in schema")
	f.BoolVar(&useDefaults, "use-defaults", false, "use \"default\" values when present")
	f.BoolVar(&includeOptional, "include-optional", false, "also generate properties that are not required")
	return cmd
}

func (a *app) typesCmd() *cobra.Command {
	var sample, target, export string
	cmd := &cobra.Command{
		Use:   "types [schema]",
		Short: "Emit a TypeScript interface or JavaScript class for a schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("target") {
				cfg.Target = target
			}
			if cmd.Flags().Changed("export") {
				cfg.Export = export
			}
			opts, err := cfg.CodegenOptions()
			if err != nil {
				return err
			}
			s, err := a.schema(argAt(args, 0), sample)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, codegen.Emit(s, opts))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&sample, "sample", "", "use a built-in schema")
	f.StringVar(&target, "target", "", "typescript or javascript")
	f.StringVar(&export, "export", "", "named or default")
	return cmd
}
