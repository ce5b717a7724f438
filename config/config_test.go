package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ecotouchd.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
heatpump:
  host: 192.168.1.50
poll:
  tags: [TEMPERATURE_OUTSIDE]
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Heatpump.Username != "waterkotte" || cfg.Heatpump.Password != "waterkotte" {
		t.Errorf("credentials default: %+v", cfg.Heatpump)
	}
	if cfg.Heatpump.Language != "en" {
		t.Errorf("language default: %q", cfg.Heatpump.Language)
	}
	if cfg.PollInterval() != time.Minute {
		t.Errorf("interval default: %v", cfg.PollInterval())
	}
	if cfg.HTTP.Listen != ":8780" {
		t.Errorf("listen default: %q", cfg.HTTP.Listen)
	}
	if cfg.MQTT != nil {
		t.Error("mqtt must stay disabled when the section is absent")
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
heatpump:
  host: heatpump.local
  username: admin
  password: secret
  tags_per_request: 20
  language: de
poll:
  interval_ms: 30000
  tags: [TEMPERATURE_OUTSIDE, STATE_COMPRESSOR]
http:
  listen: ":9100"
mqtt:
  broker: tcp://broker.local:1883
  topic_prefix: home/heatpump
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Heatpump.TagsPerRequest != 20 || cfg.Heatpump.Language != "de" {
		t.Errorf("heatpump section: %+v", cfg.Heatpump)
	}
	if cfg.PollInterval() != 30*time.Second {
		t.Errorf("interval: %v", cfg.PollInterval())
	}
	if cfg.MQTT.ClientID != "ecotouchd" {
		t.Errorf("client id default: %q", cfg.MQTT.ClientID)
	}
	if len(cfg.Poll.Tags) != 2 {
		t.Errorf("tags: %v", cfg.Poll.Tags)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing host", "poll:\n  tags: [TEMPERATURE_OUTSIDE]\n"},
		{"interval too small", "heatpump:\n  host: h\npoll:\n  interval_ms: 100\n"},
		{"mqtt without broker", "heatpump:\n  host: h\nmqtt:\n  topic_prefix: x\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.doc))
			if err != nil {
				t.Fatal(err)
			}
			if err := Validate(cfg); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
