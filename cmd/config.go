package cmd

import (
	"github.com/fioncat/wrapgen/pkg/context"
	"github.com/fioncat/wrapgen/pkg/term"
	"github.com/spf13/cobra"
)

func NewConfig() *cobra.Command {
	var opts configOptions

	c := &cobra.Command{
		Use:   "config",
		Short: "Show the effective config",

		Args: cobra.NoArgs,
	}

	return Build(c, &opts)
}

type configOptions struct{}

func (o *configOptions) Complete(c *cobra.Command, args []string) error {
	return nil
}

func (o *configOptions) Run(ctx *context.Context) error {
	term.PrintInfo("Config file %s", ctx.Config.GetPath())
	return term.PrintJson(ctx.Stdout, ctx.Config)
}
