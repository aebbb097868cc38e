package config

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/Alia5/padshape/internal/configpaths"
)

// EnvPrefix prefixes the environment variable of every flag.
const EnvPrefix = "PADSHAPE"

// NewParser builds the kong parser for cli. Config files are searched for
// userConfig first and then the default locations; flags and environment
// variables override config values.
func NewParser(cli *CLI, userConfig string, extra ...kong.Option) (*kong.Kong, error) {
	paths := configpaths.ConfigCandidatePaths(userConfig)
	opts := []kong.Option{
		kong.Name("padshape"),
		kong.Description("Stick, trigger and motion shaping for virtual controllers"),
		kong.UsageOnError(),
		kong.DefaultEnvars(EnvPrefix),
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	}
	return kong.New(cli, append(opts, extra...)...)
}

// FindUserConfig returns the --config value from args, falling back to the
// PADSHAPE_CONFIG environment variable. It runs before kong so the file can
// be handed to the config loaders.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(configpaths.EnvConfig)
}
