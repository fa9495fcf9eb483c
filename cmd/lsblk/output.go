package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// outputFormat picks the format from the flags, falling back to the config
// file's default.
func outputFormat() string {
	if jsonOut {
		return "json"
	}
	if outFormat != "" {
		return outFormat
	}
	return loadConfig().Output
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encoding json")
	}
	fmt.Println(string(data))
}

func printYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		log.Fatal().Err(err).Msg("encoding yaml")
	}
	os.Stdout.Write(data)
}
