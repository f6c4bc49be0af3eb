// Package config resolves the generator's file paths and fetch settings.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default filepaths, used when neither flags, environment, nor config
// file supply a value.
const (
	DefaultContentCSVPath   = "./content.csv"
	DefaultPageTemplatePath = "./index_template.html"
	DefaultOutfilePath      = "index.html"
)

type Config struct {
	ContentCSV   string
	PageTemplate string
	Outfile      string

	// FetchTimeout caps each oEmbed request; zero disables the cap.
	FetchTimeout time.Duration
}

// Load reads config from environment (HOMEGEN_ prefix) and an optional
// homegen.yaml in the working directory. Flag values override both when
// non-empty.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HOMEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("homegen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("content_csv", DefaultContentCSVPath)
	v.SetDefault("page_template", DefaultPageTemplatePath)
	v.SetDefault("outfile", DefaultOutfilePath)
	v.SetDefault("fetch_timeout", "0s")

	cfg := &Config{}
	cfg.ContentCSV = v.GetString("content_csv")
	cfg.PageTemplate = v.GetString("page_template")
	cfg.Outfile = v.GetString("outfile")

	timeout, err := time.ParseDuration(v.GetString("fetch_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOMEGEN_FETCH_TIMEOUT: %w", err)
	}
	cfg.FetchTimeout = timeout

	return cfg, nil
}
