package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/refd/refactoring"
	"github.com/viant/refd/spec"
)

func newPullUpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pull-up <Class.method(types)> [destination]",
		Short: "Predict dangers of pulling a method up into a superclass",
		Long: `Predict dangers of moving a method into one of the super classes of its class.
Without a destination the candidate super classes are listed.

Examples:
  refd pull-up 'Circle.area()' Shape
  refd pull-up 'Circle.scale(double)'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			target, err := spec.FindMethod(s.graph, args[0])
			if err != nil {
				return fmt.Errorf("failed to find method %v: %w", args[0], err)
			}
			if len(args) == 1 {
				return s.listSuperClasses(cmd, target)
			}
			destination, err := s.findClass(args[1])
			if err != nil {
				return err
			}
			pullUp, err := refactoring.NewPullUpMethod(s.graph, target, destination)
			if err != nil {
				return err
			}
			return s.run(cmd, pullUp)
		},
	}
}

func (s *session) listSuperClasses(cmd *cobra.Command, target *spec.Method) error {
	supers, err := target.Class.Stream(s.graph).AllSuperClasses().Collect()
	if err != nil {
		return err
	}
	classes, err := spec.Classes(supers)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(classes) == 0 {
		_, err = fmt.Fprintf(out, "%v has no super classes\n", target.Class)
		return err
	}
	fmt.Fprintf(out, "super classes of %v:\n", target.Class)
	for _, class := range classes {
		fmt.Fprintf(out, "  %v\n", class)
	}
	return nil
}

func newCombineCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "combine <package,visibility,name> <Class.method(types)>...",
		Short: "Predict dangers of combining methods into a new class",
		Long: `Predict dangers of creating a class and moving every listed method into it.

Examples:
  refd combine 'app,public,Geometry' 'Circle.area()' 'Square.area()'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination, err := spec.ParseClass(args[0])
			if err != nil {
				return err
			}
			s, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			targets, err := s.findMethods(args[1:])
			if err != nil {
				return err
			}
			return s.run(cmd, refactoring.NewCombineMethodsIntoClass(destination, targets))
		},
	}
}
