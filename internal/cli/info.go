package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	jayson "github.com/reoring/jayson"
	"github.com/reoring/jayson/samples"
)

func (a *app) infoCmd() *cobra.Command {
	var sample string
	cmd := &cobra.Command{
		Use:   "info [schema]",
		Short: "Summarize a schema's title, root type and properties",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.schema(argAt(args, 0), sample)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(jayson.Describe(s), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, string(b))
			return nil
		},
	}
	cmd.Flags().StringVar(&sample, "sample", "", "use a built-in schema")
	return cmd
}

func (a *app) samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples [name]",
		Short: "List the built-in samples or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				b, err := samples.Find(args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(a.out, string(b))
				return nil
			}
			for _, k := range []samples.Kind{samples.KindSchema, samples.KindData} {
				for _, n := range samples.Names(k) {
					fmt.Fprintf(a.out, "%s\t%s\n", k, n)
				}
			}
			return nil
		},
	}
}
