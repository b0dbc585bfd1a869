package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/longsangsabo/sabo-pool-v12-sub010/elo"
	"github.com/longsangsabo/sabo-pool-v12-sub010/spa"
)

type Server struct {
	Debug bool `toml:"debug_mode"`
}

type Config struct {
	Server Server     `toml:"server"`
	ELO    elo.Config `toml:"elo"`
	SPA    spa.Config `toml:"spa"`
}

// Default returns the built-in rating and economy parameters.
func Default() Config {
	return Config{
		ELO: elo.DefaultConfig(),
		SPA: spa.DefaultConfig(),
	}
}

// Load reads a TOML file over the defaults, so a partial file only
// overrides the keys it names. The RATING_DEBUG environment variable
// forces debug mode on regardless of the file.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if os.Getenv("RATING_DEBUG") != "" {
		cfg.Server.Debug = true
	}
	return cfg, nil
}
