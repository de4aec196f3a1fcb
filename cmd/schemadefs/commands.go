package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/schemadefs"
)

type rootOptions struct {
	verbose bool
}

// logf writes diagnostics to stderr when -v is set.
func (o *rootOptions) logf(cmd *cobra.Command, format string, a ...any) {
	if o.verbose {
		cmd.PrintErrf(format+"\n", a...)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "schemadefs",
		Short:        "Print reusable JSON Schema fragments",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logs")
	cmd.AddCommand(newShowCommand(opts), newListCommand(opts))
	return cmd
}

func newShowCommand(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show [NAME]",
		Short: "Render a schema fragment",
		Long:  "Render the named schema fragment (default ElementIds) as json, json-indent, member or yaml.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := schemadefs.ElementIdsName
			if len(args) == 1 {
				name = args[0]
			}
			f, err := schemadefs.ParseFormat(format)
			if err != nil {
				return err
			}
			frag, err := schemadefs.Lookup(name)
			if err != nil {
				return err
			}
			root.logf(cmd, "show: name=%s format=%s", name, f)
			out, err := schemadefs.Render(frag, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json-indent", "output format: json, json-indent, member, yaml")
	return cmd
}

func newListCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known schema fragments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := schemadefs.Definitions()
			root.logf(cmd, "list: %d definitions", len(defs))
			for _, d := range defs {
				fmt.Fprintln(cmd.OutOrStdout(), d.Name)
			}
			return nil
		},
	}
}
