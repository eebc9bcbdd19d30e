package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fioncat/wrapgen/pkg/context"
	"github.com/fioncat/wrapgen/pkg/errors"
	"github.com/fioncat/wrapgen/pkg/term"
	"github.com/fioncat/wrapgen/pkg/wrapper"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func NewPlaceholders() *cobra.Command {
	var opts placeholdersOptions

	c := &cobra.Command{
		Use:   "placeholders [TEMPLATE]",
		Short: "Show the placeholders found in a template",

		Args: cobra.MaximumNArgs(1),
	}

	c.Flags().BoolVarP(&opts.strict, "strict", "s", false, "exit with error if any placeholder is missing")

	return Build(c, &opts)
}

type placeholdersOptions struct {
	template string

	strict bool
}

func (o *placeholdersOptions) Complete(c *cobra.Command, args []string) error {
	if len(args) > 0 {
		o.template = args[0]
	}
	return nil
}

func (o *placeholdersOptions) Run(ctx *context.Context) error {
	path := o.template
	if path == "" {
		path = ctx.Config.Template
	}

	tmpl, err := wrapper.ReadTemplate(path)
	if err != nil {
		return err
	}

	placeholders := wrapper.Scan(tmpl)

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Placeholder", "Count", "Lines"})
	var missing bool
	for _, p := range placeholders {
		lines := make([]string, 0, len(p.Lines))
		for _, line := range p.Lines {
			lines = append(lines, strconv.Itoa(line))
		}
		t.AppendRow(table.Row{p.Token, p.Count, strings.Join(lines, ",")})
		if !p.Found() {
			missing = true
		}
	}
	if width, err := term.GetWidth(); err == nil && width > 0 {
		t.SetAllowedRowLength(width)
	}
	fmt.Fprintln(ctx.Stdout, t.Render())

	if !missing {
		return nil
	}
	for _, p := range placeholders {
		if !p.Found() {
			term.PrintWarn("Placeholder %s not found in %s", p.Token, path)
		}
	}
	if o.strict {
		return errors.ErrSilenceExit
	}
	return nil
}
