package main

import (
	"os"

	"txkv/kvstore"
	"txkv/observability"
	"txkv/txstore"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := LoadConfig(os.Getenv)
	observability.Configure(os.Stderr, cfg.LogLevel)

	if err != nil {
		log.Fatal().
			Err(err).
			Msg("server: invalid configuration")
	}

	kvOptions := kvstore.Options{
		Validation: kvstore.ValidationOptions{
			MaxKeySize: cfg.MaxKeySize,
		},
	}

	kvStore := kvstore.New[int64](txstore.New[int64](), kvOptions)

	if err := startRepl(os.Stdin, os.Stdout, kvStore); err != nil {
		log.Fatal().
			Err(err).
			Msg("server: failed to read input")
	}
}
