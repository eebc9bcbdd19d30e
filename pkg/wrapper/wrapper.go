package wrapper

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	AppDirPlaceholder = "@APP_DIR_DECLARATION@"
	BinaryPlaceholder = "@WRAPPED_BINARY@"

	DefaultTemplate = "scripts/run_wrapper.sh.in"
)

// DevDeclaration resolves the app dir relative to the script location at run time.
const DevDeclaration = `SCRIPT_DIR="$(cd "$(dirname "$0")" && pwd)"
APP_DIR="$(cd "$SCRIPT_DIR/.." && pwd)"`

var (
	ErrMissingTemplate = errors.New("template not found")
	ErrWrite           = errors.New("write output failed")
)

type Mode string

const (
	ModeDev     Mode = "dev"
	ModeInstall Mode = "install"
)

var Modes = []string{string(ModeDev), string(ModeInstall)}

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDev, ModeInstall:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q, expect one of %v", s, Modes)
	}
}

type Options struct {
	Mode Mode

	// InstallAppDir is only used in install mode.
	InstallAppDir string

	Binary string
}

func (o *Options) Declaration() string {
	if o.Mode == ModeInstall {
		// The dir is inserted verbatim, no shell escaping.
		return `APP_DIR="` + o.InstallAppDir + `"`
	}
	return DevDeclaration
}

// Render substitutes both placeholders in tmpl. The declaration goes first
// so that a binary name containing a placeholder is never expanded again.
func Render(tmpl string, opts Options) string {
	content := strings.ReplaceAll(tmpl, AppDirPlaceholder, opts.Declaration())
	return strings.ReplaceAll(content, BinaryPlaceholder, opts.Binary)
}

func ReadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrMissingTemplate, path)
		}
		return "", fmt.Errorf("read template %q: %w", path, err)
	}
	return string(data), nil
}

type FileOptions struct {
	Options

	Template string
	Output   string
}

// RenderFile renders the template file into the output file, overwriting it,
// and returns the number of bytes written. The template is fully read before
// the output is touched.
func RenderFile(opts FileOptions) (int, error) {
	tmpl, err := ReadTemplate(opts.Template)
	if err != nil {
		return 0, err
	}

	content := Render(tmpl, opts.Options)

	err = os.WriteFile(opts.Output, []byte(content), 0755)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrWrite, opts.Output, err)
	}

	return len(content), nil
}
