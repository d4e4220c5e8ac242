package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-labs/lintguard/pkg/logger"
)

const (
	// DefaultConfigFile is the configuration file looked up in the
	// working directory when no path is given.
	DefaultConfigFile = ".lintguard.toml"

	// envPrefix namespaces environment variable overrides.
	envPrefix = "LINTGUARD_"

	koanfDelim = "."
)

// Loader materializes the raw configuration map the validation pipeline
// consumes, merging the TOML configuration file, LINTGUARD_* environment
// variables, and caller-supplied overrides, in that order of precedence.
type Loader struct {
	path string
	log  logger.Logger
}

// NewLoader creates a Loader reading the configuration file at path. An
// empty path skips the file and loads from the environment and overrides
// only.
func NewLoader(path string, log logger.Logger) *Loader {
	return &Loader{
		path: path,
		log:  log,
	}
}

// Load produces the merged raw configuration. Only the file source can fail;
// a missing or unreadable configuration file is an error here, not in the
// validation pipeline.
func (l *Loader) Load(overrides map[string]any) (RawConfig, error) {
	k := koanf.New(koanfDelim)

	if l.path != "" {
		l.log.Debug("loading config file", "path", l.path)

		if err := k.Load(file.Provider(l.path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "loading config file %s", l.path)
		}
	}

	if err := k.Load(env.Provider(koanfDelim, env.Opt{
		Prefix:        envPrefix,
		TransformFunc: transformEnvVar,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "loading environment overrides")
	}

	if len(overrides) > 0 {
		l.log.Debug("applying overrides", "count", len(overrides))

		if err := k.Load(confmap.Provider(overrides, koanfDelim), nil); err != nil {
			return nil, errors.Wrap(err, "applying overrides")
		}
	}

	return RawConfig(k.Raw()), nil
}

// transformEnvVar maps LINTGUARD_DISABLED_RULES=a,b to disabled_rules=[a b].
// Top-level configuration keys keep their underscores; only the prefix is
// stripped and the name lowercased.
func transformEnvVar(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		return key, parts
	}

	return key, value
}
