package version

// Version is the semantic version of this build. Overridable at link time:
//
//	go build -ldflags "-X github.com/litefire/litefire/internal/version.Version=1.2.3"
var Version = "0.1.0-dev"
