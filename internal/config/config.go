package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Redis      RedisConfig      `yaml:"redis"`
	Database   DatabaseConfig   `yaml:"database"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	HTTP       HTTPConfig       `yaml:"http"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type StorageConfig struct {
	// Driver is one of: file, redis, postgres, memory.
	Driver string `yaml:"driver"`
	// Path is the data directory for the file driver.
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQConfig struct {
	// Enabled switches the best-effort cross-process notification channel on.
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type SimulationConfig struct {
	// ProgressIntervalSeconds is the fixed tick of the automatic order
	// progression.
	ProgressIntervalSeconds int `yaml:"progress_interval_seconds"`
	// AddressLatencyMillis is the simulated latency of the address lookup
	// service.
	AddressLatencyMillis int `yaml:"address_latency_ms"`
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{Driver: "file", Path: "./data"},
		Redis:   RedisConfig{Addr: "localhost:6379"},
		Database: DatabaseConfig{
			Host: "localhost", Port: 5432,
			User: "storefront", Password: "storefront", Database: "storefront",
		},
		RabbitMQ: RabbitMQConfig{Host: "localhost", Port: 5672, User: "guest", Password: "guest"},
		HTTP:     HTTPConfig{Port: 3000},
		Simulation: SimulationConfig{
			ProgressIntervalSeconds: 10,
			AddressLatencyMillis:    500,
		},
	}
}

// Load reads the YAML config at path on top of the defaults. A missing file
// is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
