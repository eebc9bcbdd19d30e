package cmd

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fioncat/wrapgen/pkg/config"
	"github.com/fioncat/wrapgen/pkg/context"
	"github.com/fioncat/wrapgen/pkg/term"
	"github.com/fioncat/wrapgen/pkg/wrapper"
	"github.com/spf13/cobra"
)

func NewRender() *cobra.Command {
	var opts renderOptions

	c := &cobra.Command{
		Use:   "wrapgen",
		Short: "Generate a launcher script from a template",

		Args: cobra.NoArgs,
	}

	c.Flags().StringVar(&opts.mode, "mode", string(wrapper.ModeDev), "the launcher mode, one of dev, install")
	c.Flags().StringVar(&opts.installAppDir, "install-app-dir", "", "the application directory baked into an install mode launcher")
	c.Flags().StringVar(&opts.binary, "binary", "", "the binary name the launcher wraps (required)")
	c.Flags().StringVar(&opts.template, "template", wrapper.DefaultTemplate, "the template path")
	c.Flags().StringVar(&opts.output, "output", "", "the launcher output path (required)")

	err := c.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return wrapper.Modes, cobra.ShellCompDirectiveNoFileComp
	})
	if err != nil {
		panic(err)
	}

	return Build(c, &opts)
}

type renderOptions struct {
	mode          string
	installAppDir string
	binary        string
	template      string
	output        string

	// Flags the user set explicitly, these are never overridden by config.
	changed map[string]bool
}

func (o *renderOptions) Complete(c *cobra.Command, args []string) error {
	o.changed = make(map[string]bool)
	for _, name := range []string{"mode", "install-app-dir", "binary", "template"} {
		o.changed[name] = c.Flags().Changed(name)
	}

	if o.output == "" {
		return errors.New("output cannot be empty")
	}
	if o.changed["mode"] {
		_, err := wrapper.ParseMode(o.mode)
		if err != nil {
			return err
		}
	}

	return nil
}

func (o *renderOptions) Run(ctx *context.Context) error {
	opts, err := o.resolve(ctx.Config)
	if err != nil {
		return fmt.Errorf("validate command args: %w", err)
	}

	size, err := wrapper.RenderFile(*opts)
	if err != nil {
		return err
	}

	term.PrintInfo("Generated %s launcher %s (%s)", opts.Mode, opts.Output, humanize.IBytes(uint64(size)))
	return nil
}

// resolve merges the flags with the config defaults.
func (o *renderOptions) resolve(cfg *config.Config) (*wrapper.FileOptions, error) {
	mode := cfg.GetMode()
	if o.changed["mode"] {
		mode = wrapper.Mode(o.mode)
	}

	installAppDir := cfg.InstallAppDir
	if o.changed["install-app-dir"] {
		installAppDir = o.installAppDir
	}

	binary := cfg.Binary
	if o.changed["binary"] {
		binary = o.binary
	}

	template := cfg.Template
	if o.changed["template"] {
		template = o.template
	}

	if binary == "" {
		return nil, errors.New("binary cannot be empty")
	}
	if mode == wrapper.ModeInstall && installAppDir == "" {
		return nil, errors.New("install-app-dir is required in install mode")
	}

	return &wrapper.FileOptions{
		Options: wrapper.Options{
			Mode:          mode,
			InstallAppDir: installAppDir,
			Binary:        binary,
		},
		Template: template,
		Output:   o.output,
	}, nil
}
