package main

import (
	"time"

	"algorecall-scraper/lib/configutil"
	"algorecall-scraper/lib/scraper"
)

const DefaultUrl = "https://example.com"

type Config struct {
	Url              string `json:"url"`
	UserAgent        string `json:"user_agent"`
	TimeoutSeconds   int    `json:"timeout_seconds"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
}

var defaultConfig = Config{
	Url:            DefaultUrl,
	UserAgent:      scraper.DefaultUserAgent,
	TimeoutSeconds: int(scraper.DefaultTimeout / time.Second),
}

// reads scraper.json5 (and scraper.local.json5) from the working directory,
// when neither exists the built in defaults are used.
func readConfig(path string) (Config, error) {
	return configutil.ReadWithDefaults(path, defaultConfig)
}

func (c Config) clientOptions() scraper.ClientOptions {
	return scraper.ClientOptions{
		UserAgent:        c.UserAgent,
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
		CloudflareBypass: c.CloudflareBypass,
	}
}
