package hack

import (
	_ "embed"
)

//go:embed run_wrapper.sh.in
var starterTemplate string

// GetStarterTemplate returns an example launcher template that carries both
// placeholders.
func GetStarterTemplate() string {
	return starterTemplate
}
