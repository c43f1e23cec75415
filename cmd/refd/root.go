package main

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/viant/refd/config"
	"github.com/viant/refd/logger"
)

// options holds persistent flag values and the resolved configuration
type options struct {
	configFile   string
	graphPath    string
	graphFormat  string
	reportFormat string
	output       string
	projectRoot  string

	cfg    *config.Config
	logger hclog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:                   "refd [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "refd predicts the dangers of a refactoring before it is applied.",
		Long: `refd replays a refactoring as a sequence of microsteps against a program graph snapshot
and reports every location where the program could break: missing definitions,
lost specifications, broken subtyping, overload conversions and more.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is ./.refd.yaml)")
	flags.StringVarP(&opts.graphPath, "graph", "g", "", "program graph snapshot path or URL")
	flags.StringVar(&opts.graphFormat, "graph-format", "", "program graph snapshot format: yaml or sqlite")
	flags.StringVarP(&opts.reportFormat, "format", "f", "", "report format: text, yaml or sarif")
	flags.StringVarP(&opts.output, "output", "o", "", "report destination path or URL, stdout when empty")
	flags.StringVar(&opts.projectRoot, "project", "", "directory within the analysed project")

	cmd.AddCommand(
		newPullUpCmd(opts),
		newCombineCmd(opts),
		newClassesCmd(opts),
		newMethodsCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

// init loads the configuration, flags take precedence over file and environment settings
func (o *options) init(cmd *cobra.Command) error {
	cfg, err := config.Load(".", o.configFile)
	if err != nil {
		return err
	}
	override(&cfg.Graph.Path, o.graphPath)
	override(&cfg.Graph.Format, o.graphFormat)
	override(&cfg.Report.Format, o.reportFormat)
	override(&cfg.Report.Output, o.output)
	override(&cfg.Project.Root, o.projectRoot)
	if err = cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	o.logger = logger.NewWithOutput(cfg, "refd", cmd.ErrOrStderr())
	return nil
}

func override(target *string, value string) {
	if value != "" {
		*target = value
	}
}
