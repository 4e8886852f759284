package cdn

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultEndpoint = "https://cdn.hermes.chat/api/purge"
	DefaultAssets   = "/assets/hermes-chat/theme.css"
)

// Settings configures one theme purge.
type Settings struct {
	Endpoint string
	Token    string
	Assets   []string
	DryRun   bool
}

// flag name -> viper key. Keys resolve from HERMES_<KEY> in the environment.
var flagKeys = map[string]string{
	"endpoint": "cdn_purge_endpoint",
	"token":    "cdn_purge_token",
	"paths":    "theme_cdn_paths",
	"dry-run":  "theme_purge_dry_run",
}

// RegisterFlags adds the purge flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("endpoint", "", "purge API endpoint (env HERMES_CDN_PURGE_ENDPOINT)")
	fs.String("token", "", "bearer token (env HERMES_CDN_PURGE_TOKEN)")
	fs.String("paths", "", "comma-separated asset paths to purge (env HERMES_THEME_CDN_PATHS)")
	fs.Bool("dry-run", false, "log the payload without calling the CDN (env HERMES_THEME_PURGE_DRY_RUN)")
}

// LoadSettings resolves settings from explicitly set flags, then HERMES_*
// environment variables, then defaults. fs may be nil.
func LoadSettings(fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("HERMES")
	v.AutomaticEnv()

	v.SetDefault("cdn_purge_endpoint", DefaultEndpoint)
	v.SetDefault("cdn_purge_token", "")
	v.SetDefault("theme_cdn_paths", DefaultAssets)
	v.SetDefault("theme_purge_dry_run", false)

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Settings{}, fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}

	return Settings{
		Endpoint: v.GetString("cdn_purge_endpoint"),
		Token:    v.GetString("cdn_purge_token"),
		Assets:   splitPaths(v.GetString("theme_cdn_paths")),
		DryRun:   v.GetBool("theme_purge_dry_run"),
	}, nil
}

func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
