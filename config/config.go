package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the daemon configuration, loaded from one YAML file.
type Config struct {
	Heatpump HeatpumpConfig `yaml:"heatpump"`
	Poll     PollConfig     `yaml:"poll"`
	HTTP     HTTPConfig     `yaml:"http"`
	MQTT     *MQTTConfig    `yaml:"mqtt"`
}

type HeatpumpConfig struct {
	Host           string `yaml:"host"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	TagsPerRequest int    `yaml:"tags_per_request"`
	Language       string `yaml:"language"`
	// CatalogFile points at a YAML overlay with extra property definitions.
	CatalogFile string `yaml:"catalog_file"`
}

type PollConfig struct {
	IntervalMs int      `yaml:"interval_ms"`
	Tags       []string `yaml:"tags"`
}

type HTTPConfig struct {
	Listen string `yaml:"listen"`
}

// MQTT is opt-in; a nil section disables publishing.
type MQTTConfig struct {
	Broker      string `yaml:"broker"`
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TopicPrefix string `yaml:"topic_prefix"`
}

// Load reads and parses the config file and fills in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Heatpump.Username == "" {
		c.Heatpump.Username = "waterkotte"
	}
	if c.Heatpump.Password == "" {
		c.Heatpump.Password = "waterkotte"
	}
	if c.Heatpump.Language == "" {
		c.Heatpump.Language = "en"
	}
	if c.Poll.IntervalMs == 0 {
		c.Poll.IntervalMs = 60000
	}
	if c.HTTP.Listen == "" {
		c.HTTP.Listen = ":8780"
	}
	if c.MQTT != nil && c.MQTT.ClientID == "" {
		c.MQTT.ClientID = "ecotouchd"
	}
}

// Validate checks configuration correctness. It does not mutate the config.
func Validate(c *Config) error {
	if c.Heatpump.Host == "" {
		return fmt.Errorf("heatpump.host is required")
	}
	if c.Poll.IntervalMs < 1000 {
		return fmt.Errorf("poll.interval_ms must be at least 1000, got %d", c.Poll.IntervalMs)
	}
	if c.MQTT != nil && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt.broker is required when the mqtt section is present")
	}
	return nil
}

// PollInterval returns the poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Poll.IntervalMs) * time.Millisecond
}
