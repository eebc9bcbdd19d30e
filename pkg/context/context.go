package context

import (
	"io"

	"github.com/fioncat/wrapgen/pkg/config"
)

type Context struct {
	Config *config.Config

	// Stdout receives command data, status lines go through pkg/term.
	Stdout io.Writer
}

func Load(configPath string, stdout io.Writer) (*Context, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return &Context{
		Config: cfg,
		Stdout: stdout,
	}, nil
}
