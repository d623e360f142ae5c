package config

import "testing"

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want %q", cfg.Server.Port, "8000")
	}
	if cfg.Server.RateLimit != 100 {
		t.Errorf("RateLimit = %d, want 100", cfg.Server.RateLimit)
	}
	if cfg.Catalog.Path != "data/items.json" {
		t.Errorf("Path = %q, want %q", cfg.Catalog.Path, "data/items.json")
	}
	if cfg.Catalog.SnapshotTTLSeconds != 30 {
		t.Errorf("SnapshotTTLSeconds = %d, want 30", cfg.Catalog.SnapshotTTLSeconds)
	}
	if cfg.Catalog.StatsTTLSeconds != 60 {
		t.Errorf("StatsTTLSeconds = %d, want 60", cfg.Catalog.StatsTTLSeconds)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_PATH", "/srv/catalog.json")
	t.Setenv("SNAPSHOT_TTL", "5")
	t.Setenv("STATS_TTL", "120")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Catalog.Path != "/srv/catalog.json" {
		t.Errorf("Path = %q, want %q", cfg.Catalog.Path, "/srv/catalog.json")
	}
	if cfg.Catalog.SnapshotTTLSeconds != 5 {
		t.Errorf("SnapshotTTLSeconds = %d, want 5", cfg.Catalog.SnapshotTTLSeconds)
	}
	if cfg.Catalog.StatsTTLSeconds != 120 {
		t.Errorf("StatsTTLSeconds = %d, want 120", cfg.Catalog.StatsTTLSeconds)
	}
}

func TestLoadFromEnv_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.RateLimit != 100 {
		t.Errorf("RateLimit = %d, want default 100", cfg.Server.RateLimit)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8000", RateLimit: 100},
			Catalog: CatalogConfig{Path: "data/items.json", SnapshotTTLSeconds: 30, StatsTTLSeconds: 60},
			Logging: LoggingConfig{Level: "info"},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"empty catalog path", func(c *Config) { c.Catalog.Path = "" }},
		{"zero snapshot ttl", func(c *Config) { c.Catalog.SnapshotTTLSeconds = 0 }},
		{"zero stats ttl", func(c *Config) { c.Catalog.StatsTTLSeconds = 0 }},
		{"bogus log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted invalid config")
			}
		})
	}
}
