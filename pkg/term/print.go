package term

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var Mute bool

// Output is where status lines go, data is always printed to stdout.
var Output io.Writer = os.Stderr

func PrintInfo(msg string, args ...any) {
	if Mute {
		return
	}
	msg = fmt.Sprintf(msg, args...)
	c := color.New(color.FgGreen, color.Bold)
	fmt.Fprintf(Output, "%s %s\n", c.Sprint("==>"), msg)
}

func PrintWarn(msg string, args ...any) {
	if Mute {
		return
	}
	msg = fmt.Sprintf(msg, args...)
	c := color.New(color.FgYellow, color.Bold)
	fmt.Fprintf(Output, "%s %s\n", c.Sprint("==>"), msg)
}

func PrintJson(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
