package telegram

import "time"

type Config struct {
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"pollInterval"`
	UTCDiff      time.Duration `yaml:"utcDiff"`
	ZoneName     string        `yaml:"zoneName"`

	// Locale is used when the sender's telegram client reports none.
	Locale string `yaml:"locale"`
}
