package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	BindAddress string
	Port        int
	StaticPath  string
}

func NewServerConfig() ServerConfig {
	return ServerConfig{
		BindAddress: "0.0.0.0",
		Port:        5000,
		StaticPath:  "static",
	}
}

func (c *ServerConfig) LoadFromFile(path string) error {
	_, err := toml.DecodeFile(path, &c)
	if err != nil {
		return fmt.Errorf("could not read config file at path %s: %w", path, err)
	}
	return nil
}

// ApplyEnv layers environment overrides on top of whatever the config
// file provided. PORT matches the hosting platform convention.
func (c *ServerConfig) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT must be a number, got %q", v)
		}
		c.Port = port
	}
	if v := os.Getenv("RADIO_STATIC_PATH"); v != "" {
		c.StaticPath = v
	}
	return nil
}

func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}
	if c.StaticPath == "" {
		return errors.New("configuration must provide StaticPath")
	}
	return nil
}

// AudioPath is the directory whose .mp3 entries make up the catalog.
func (c *ServerConfig) AudioPath() string {
	return filepath.Join(c.StaticPath, "audio")
}
