package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fioncat/wrapgen/hack"
	"github.com/fioncat/wrapgen/pkg/context"
	"github.com/fioncat/wrapgen/pkg/term"
	"github.com/fioncat/wrapgen/pkg/wrapper"
	"github.com/spf13/cobra"
)

func NewInit() *cobra.Command {
	var opts initOptions

	c := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a starter launcher template, use \"-\" to print it",

		Args: cobra.MaximumNArgs(1),
	}

	c.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite the template if it exists")

	return Build(c, &opts)
}

type initOptions struct {
	path string

	force bool
}

func (o *initOptions) Complete(c *cobra.Command, args []string) error {
	o.path = wrapper.DefaultTemplate
	if len(args) > 0 && args[0] != "" {
		o.path = args[0]
	}
	return nil
}

func (o *initOptions) Run(ctx *context.Context) error {
	tmpl := hack.GetStarterTemplate()
	if o.path == "-" {
		_, err := fmt.Fprint(ctx.Stdout, tmpl)
		return err
	}

	if !o.force {
		_, err := os.Stat(o.path)
		if err == nil {
			return fmt.Errorf("template %q already exists, use --force to overwrite", o.path)
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat template: %w", err)
		}
	}

	dir := filepath.Dir(o.path)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("ensure template dir: %w", err)
	}

	err = os.WriteFile(o.path, []byte(tmpl), 0644)
	if err != nil {
		return fmt.Errorf("write template: %w", err)
	}

	term.PrintInfo("Wrote starter template to %s", o.path)
	return nil
}
