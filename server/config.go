package server

import (
	"github.com/joeshaw/envdecode"

	"github.com/tabledeck/blackjack/deck"
)

// Config holds the server's environment-driven settings
type Config struct {
	Addr     string `env:"BLACKJACK_ADDR,default=:3000"`
	ShoeSize int    `env:"BLACKJACK_SHOE_SIZE,default=416"`
}

// ConfigFromEnv reads the configuration from the environment, falling
// back to the defaults above.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ShoeSize <= 0 {
		cfg.ShoeSize = deck.ShoeSize
	}
	return cfg, nil
}
