package cmd

import (
	"fmt"

	"github.com/fioncat/wrapgen/pkg/context"
	"github.com/fioncat/wrapgen/pkg/term"
	"github.com/spf13/cobra"
)

type Options interface {
	Complete(c *cobra.Command, args []string) error
	Run(ctx *context.Context) error
}

var (
	configPath string
	quiet      bool
)

// BindGlobalFlags adds the flags shared by every command to the root.
func BindGlobalFlags(c *cobra.Command) {
	c.PersistentFlags().StringVar(&configPath, "config", "", "the config file supplying flag defaults, none is read unless set")
	c.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not print status messages")
}

func Build(c *cobra.Command, opts Options) *cobra.Command {
	c.RunE = func(cmd *cobra.Command, args []string) error {
		err := opts.Complete(cmd, args)
		if err != nil {
			return fmt.Errorf("validate command args: %w", err)
		}

		term.Mute = quiet

		ctx, err := context.Load(configPath, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		return opts.Run(ctx)
	}

	return c
}
