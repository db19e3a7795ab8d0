package config

import (
	"fmt"
	"io"
	"os"
)

type envVar struct {
	name  string
	desc  string
	apply func(*Config, string)
}

var supportedEnvVars = []envVar{
	{
		// Only here for documentation purposes.  It points to where the config should be loaded from, so it is handled
		// prior to loading the config.
		name:  "REEL_CONFIG_PATH",
		desc:  "Sets the path to the config file.  Default: OS-specific config directory",
		apply: func(c *Config, s string) {}, // Special case, no-op
	},
	{
		name:  "REEL_CONFIG_CATALOG_SOURCE",
		desc:  "Sets where videos are loaded from.  One of: builtin, file, graphql.  Default: builtin",
		apply: func(c *Config, s string) { c.Catalog.Source = s },
	},
	{
		name:  "REEL_CONFIG_CATALOG_PATH",
		desc:  "Sets the catalog file for the file source.  Default: None",
		apply: func(c *Config, s string) { c.Catalog.Path = s },
	},
	{
		name:  "REEL_CONFIG_CATALOG_ENDPOINT",
		desc:  "Sets the GraphQL endpoint for the graphql source.  Default: None",
		apply: func(c *Config, s string) { c.Catalog.Endpoint = s },
	},
	{
		name:  "REEL_CONFIG_CATALOG_TOKEN",
		desc:  "Sets a bearer token sent to the GraphQL endpoint.  Default: None",
		apply: func(c *Config, s string) { c.Catalog.Token = s },
	},
	{
		name:  "REEL_CONFIG_UI_MODE",
		desc:  "Sets the front end.  One of: shell, tui.  Default: shell",
		apply: func(c *Config, s string) { c.UI.Mode = s },
	},
	{
		name:  "REEL_CONFIG_UI_PROMPT",
		desc:  "Sets the shell prompt.  Default: 'reel> '",
		apply: func(c *Config, s string) { c.UI.Prompt = s },
	},
	{
		name:  "REEL_CONFIG_LOGGING_LEVEL",
		desc:  "Sets the logging level.  One of: trace, debug, info, warn, error.  Default: info",
		apply: func(c *Config, s string) { c.Logging.Level = s },
	},
	{
		name:  "REEL_CONFIG_LOGGING_FILE_PATH",
		desc:  "Sets the logging file path.  Default: OS-specific",
		apply: func(c *Config, s string) { c.Logging.FilePath = s },
	},
}

func applyEnvVarOverrides(c *Config) {
	for _, envVar := range supportedEnvVars {
		if value := os.Getenv(envVar.name); value != "" {
			envVar.apply(c, value)
		}
	}
}

// PrintEnvVars writes the supported environment variables and their descriptions
func PrintEnvVars(w io.Writer) {
	for _, envVar := range supportedEnvVars {
		_, _ = fmt.Fprintf(w, "  %s\n      %s\n", envVar.name, envVar.desc)
	}
}
