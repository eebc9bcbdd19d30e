package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/fioncat/wrapgen/build"
	"github.com/fioncat/wrapgen/cmd"
	rerrors "github.com/fioncat/wrapgen/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	c := cmd.NewRender()

	c.SilenceErrors = true
	c.SilenceUsage = true
	c.CompletionOptions = cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	}
	c.Version = build.Version

	cmd.BindGlobalFlags(c)

	c.AddCommand(cmd.NewConfig())
	c.AddCommand(cmd.NewInit())
	c.AddCommand(cmd.NewPlaceholders())

	return c
}

func main() {
	color.NoColor = false
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}

	c := newCmd()

	err := c.Execute()
	if err != nil {
		if !errors.Is(err, rerrors.ErrSilenceExit) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
