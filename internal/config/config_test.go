package config

import "testing"

func TestReadConfigDefaults(t *testing.T) {
	t.Setenv("ROGOLD_SESSION_KEY", "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")

	cfg, err := ReadConfig()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if cfg.DataDir != "data" {
		t.Errorf("expected data dir %q, got %q", "data", cfg.DataDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
}

func TestReadConfigEnvOverride(t *testing.T) {
	t.Setenv("ROGOLD_SESSION_KEY", "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")
	t.Setenv("ROGOLD_DATA_DIR", "/tmp/portal")
	t.Setenv("ROGOLD_DEBUG", "true")

	cfg, err := ReadConfig()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if cfg.DataDir != "/tmp/portal" {
		t.Errorf("expected overridden data dir, got %q", cfg.DataDir)
	}
	if !cfg.Debug {
		t.Error("expected debug to be true")
	}
}

func TestReadConfigRequiresSessionKey(t *testing.T) {
	t.Setenv("ROGOLD_SESSION_KEY", "")

	if _, err := ReadConfig(); err == nil {
		t.Error("expected an error for a missing session key")
	}
}
