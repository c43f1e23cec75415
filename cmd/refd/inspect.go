package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/refd/location"
	"github.com/viant/refd/spec"
	"github.com/viant/refd/store"
)

func newClassesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List classes of the program graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			set, err := location.Universe(s.graph).Classes().Collect()
			if err != nil {
				return err
			}
			classes, err := spec.Classes(set)
			if err != nil {
				return err
			}
			for _, class := range classes {
				fmt.Fprintf(cmd.OutOrStdout(), "%v %v\n", class.Visibility, class)
			}
			return nil
		},
	}
}

func newMethodsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "methods [class]",
		Short: "List methods of the program graph, optionally of one class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			classes := location.Universe(s.graph).Classes()
			if len(args) == 1 {
				classes = classes.ClassesByName(args[0])
			}
			set, err := classes.Methods().Collect()
			if err != nil {
				return err
			}
			methods, err := spec.Methods(set)
			if err != nil {
				return err
			}
			for _, method := range methods {
				fmt.Fprintf(cmd.OutOrStdout(), "%v %v %v\n", method.Visibility, method.ReturnType, method)
			}
			return nil
		},
	}
}

func newExportCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <destination>",
		Short: "Convert the program graph snapshot into another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			var target store.Exporter
			if target, err = newStore(args[0], format); err != nil {
				return err
			}
			if err = target.Export(cmd.Context(), s.graph); err != nil {
				return fmt.Errorf("failed to export graph: %w", err)
			}
			s.logger.Info("graph exported", "destination", args[0], "format", format, "locations", s.graph.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "to", "sqlite", "destination format: yaml or sqlite")
	return cmd
}
