package cfg

import (
	"testing"
	"time"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestInitAndGet(t *testing.T) {
	cfg := Init(&Opts{
		ConfigPath: "testdata/site.yml",
		Timezone:   "UTC",
		Debug:      true,
	})

	if cfg.ConfigPath != "testdata/site.yml" {
		t.Errorf("Expected config path 'testdata/site.yml', got '%s'", cfg.ConfigPath)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone 'UTC', got '%s'", cfg.Timezone)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version == "" {
		t.Error("Expected version to be set from build metadata")
	}

	if Get() != cfg {
		t.Error("Get should return the configuration built by Init")
	}
}

func TestInitAppliesTimezone(t *testing.T) {
	Init(&Opts{Timezone: "UTC"})

	if time.Local.String() != "UTC" {
		t.Errorf("Expected local timezone 'UTC', got '%s'", time.Local.String())
	}
}

func TestInitInvalidTimezoneFallsBack(t *testing.T) {
	// An invalid timezone must not prevent configuration loading
	cfg := Init(&Opts{Timezone: "Not/AZone"})

	if cfg == nil {
		t.Fatal("Init should succeed despite an invalid timezone")
	}
	if cfg.Timezone != "Not/AZone" {
		t.Errorf("Expected raw timezone to be preserved, got '%s'", cfg.Timezone)
	}
}
