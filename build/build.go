package build

// Set via -ldflags "-X github.com/fioncat/wrapgen/build.Version=..."
var Version = "dev"
