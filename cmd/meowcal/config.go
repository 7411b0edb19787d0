package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/meowcal/internal/api"
	"github.com/nikmy/meowcal/internal/repo"
	"github.com/nikmy/meowcal/internal/telegram"
	"github.com/nikmy/meowcal/pkg/environment"
	"github.com/nikmy/meowcal/pkg/errors"
)

const (
	envTelegramToken = "MEOWCAL_TELEGRAM_TOKEN"
	envMongoPassword = "MEOWCAL_MONGO_PASSWORD"
)

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	Telegram    telegram.Config `yaml:"Telegram"`
	API         api.Config      `yaml:"API"`
	Storage     repo.Config     `yaml:"Storage"`
}

func loadConfig(args []string) (*Config, error) {
	flags := flag.NewFlagSet("meowcal", flag.ContinueOnError)
	env := flags.String("env", "", "environment (dev, prod)")
	path := flags.String("config", "config.yaml", "path to yaml config")
	dotenv := flags.String("dotenv", ".env", "file with secrets, skipped if missing")

	err := flags.Parse(args)
	if err != nil {
		return nil, errors.WrapFail(err, "parse flags")
	}

	cfg, err := readConfig(*path)
	if err != nil {
		return nil, err
	}

	if *env != "" {
		cfg.Environment = environment.FromString(*env)
	}

	err = loadSecrets(*dotenv, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func readConfig(path string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", path)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	return &cfg, nil
}

// loadSecrets puts the dotenv file into the process environment without
// overriding variables that are already set, then reads secrets from it.
func loadSecrets(dotenv string, cfg *Config) error {
	err := godotenv.Load(dotenv)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.WrapFailf(err, "load %q", dotenv)
	}

	if token, ok := os.LookupEnv(envTelegramToken); ok {
		cfg.Telegram.Token = token
	}
	if password, ok := os.LookupEnv(envMongoPassword); ok {
		cfg.Storage.Mongo.Auth.Password = password
	}

	return nil
}
