package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"datamesh-service/service/generator"
	"datamesh-service/service/lineage"
)

type rootOptions struct {
	seed   uint64
	pretty bool
}

func (o *rootOptions) generator() *generator.Generator {
	if o.seed == 0 {
		return generator.New()
	}
	return generator.New(generator.WithSeed(o.seed))
}

func (o *rootOptions) print(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	if o.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "meshctl",
		Short:         "Inspect the mock data-mesh dataset offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks a random one")
	cmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")

	cmd.AddCommand(
		newBaselineCmd(opts),
		newTrendCmd(opts),
		newSourcesCmd(opts),
		newUpdateCmd(opts),
		newLineageCmd(opts),
	)
	return cmd
}

func newBaselineCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Print the baseline snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.print(cmd.OutOrStdout(), opts.generator().Baseline())
		},
	}
}

func newTrendCmd(opts *rootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Print a daily trend window, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.print(cmd.OutOrStdout(), opts.generator().Trend(days))
		},
	}
	cmd.Flags().IntVar(&days, "days", generator.DefaultTrendWindow, "window size in days")
	return cmd
}

func newSourcesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Print per-source quality rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.print(cmd.OutOrStdout(), opts.generator().SourceRows())
		},
	}
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Print live updates as they would be pushed to subscribers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := opts.generator()
			var seq int64
			next := func() int64 { seq++; return seq }
			for i := 0; i < count; i++ {
				if err := opts.print(cmd.OutOrStdout(), gen.Update(next)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of updates")
	return cmd
}

func newLineageCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lineage",
		Short: "Lineage graph utilities",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check referential integrity and acyclicity of the lineage graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			graph := opts.generator().Baseline().Lineage
			if err := lineage.Validate(graph); err != nil {
				return fmt.Errorf("lineage graph is invalid: %w", err)
			}
			return opts.print(cmd.OutOrStdout(), map[string]interface{}{
				"valid": true,
				"nodes": len(graph.Nodes),
				"links": len(graph.Links),
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "impact <node-id>",
		Short: "List every node upstream and downstream of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph := opts.generator().Baseline().Lineage
			if _, ok := lineage.Node(graph, args[0]); !ok {
				return fmt.Errorf("node %q not found", args[0])
			}
			return opts.print(cmd.OutOrStdout(), map[string]interface{}{
				"nodeId":     args[0],
				"upstream":   lineage.Upstream(graph, args[0]),
				"downstream": lineage.Downstream(graph, args[0]),
			})
		},
	})
	return cmd
}
