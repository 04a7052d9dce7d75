package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"distortion-os/log"

	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".distortion-os"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// UI scale values
const (
	ScaleNormal = "normal"
	ScaleLarge  = "large"
)

// Recovery drag modifiers
const (
	ModifierAlt   = "alt"
	ModifierCtrl  = "ctrl"
	ModifierShift = "shift"
)

const (
	defaultMobileWidth    = 60
	defaultAutoLoginDelay = 10000
	defaultAccessCode     = "DISTORTIONDIVINA"
	defaultStoreURL       = "https://example.com/distortion/store"
)

// Event is a date the communications window counts down to.
type Event struct {
	// Key is the i18n key of the event label.
	Key string    `json:"key"`
	At  time.Time `json:"at"`
}

// Config represents the application configuration. The file may contain
// comments and trailing commas. Environment variables override the file.
type Config struct {
	// Language is the display language. Empty means taken from $LANG.
	Language string `json:"language" env:"DOS_LANG"`
	// Sound enables the terminal bell effects.
	Sound bool `json:"sound" env:"DOS_SOUND"`
	// UIScale is "normal" or "large".
	UIScale string `json:"ui_scale" env:"DOS_UI_SCALE"`
	// MobileWidth is the terminal width below which the mobile layout is used.
	MobileWidth int `json:"mobile_width" env:"DOS_MOBILE_WIDTH"`
	// AutoLoginDelayMs is how long the login screen waits before typing the
	// access code by itself.
	AutoLoginDelayMs int `json:"auto_login_delay_ms" env:"DOS_AUTO_LOGIN_MS"`
	// AccessCode is what the auto login types.
	AccessCode string `json:"access_code"`
	// RecoveryModifier is the key held to drag every window at once:
	// "alt", "ctrl" or "shift". Alt is the default since most terminals
	// keep shift+drag for selecting text.
	RecoveryModifier string `json:"recovery_modifier" env:"DOS_RECOVERY_MODIFIER"`
	// StoreURL is the page the supply depot links to.
	StoreURL string `json:"store_url" env:"DOS_STORE_URL"`
	// Events are the countdown targets of the communications window.
	Events []Event `json:"events"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	kst := time.FixedZone("KST", 9*60*60)
	return &Config{
		Sound:            true,
		UIScale:          ScaleNormal,
		MobileWidth:      defaultMobileWidth,
		AutoLoginDelayMs: defaultAutoLoginDelay,
		AccessCode:       defaultAccessCode,
		RecoveryModifier: ModifierAlt,
		StoreURL:         defaultStoreURL,
		Events: []Event{
			{Key: "comm_event_1", At: time.Date(2026, 2, 15, 11, 30, 0, 0, kst)},
			{Key: "comm_event_2", At: time.Date(2026, 2, 21, 12, 0, 0, 0, kst)},
		},
	}
}

// AutoLoginDelay returns AutoLoginDelayMs as a duration.
func (c *Config) AutoLoginDelay() time.Duration {
	return time.Duration(c.AutoLoginDelayMs) * time.Millisecond
}

// RecoveryHeld reports whether the configured recovery modifier is among
// the held modifiers.
func (c *Config) RecoveryHeld(alt, ctrl, shift bool) bool {
	switch c.RecoveryModifier {
	case ModifierCtrl:
		return ctrl
	case ModifierShift:
		return shift
	default:
		return alt
	}
}

// normalize replaces out of range values with their defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	c.UIScale = strings.ToLower(strings.TrimSpace(c.UIScale))
	if c.UIScale != ScaleNormal && c.UIScale != ScaleLarge {
		c.UIScale = def.UIScale
	}
	c.RecoveryModifier = strings.ToLower(strings.TrimSpace(c.RecoveryModifier))
	switch c.RecoveryModifier {
	case ModifierAlt, ModifierCtrl, ModifierShift:
	default:
		log.WarningLog.Printf("unknown recovery modifier %q, using %s", c.RecoveryModifier, def.RecoveryModifier)
		c.RecoveryModifier = def.RecoveryModifier
	}
	if c.MobileWidth <= 0 {
		c.MobileWidth = def.MobileWidth
	}
	if c.AutoLoginDelayMs <= 0 {
		c.AutoLoginDelayMs = def.AutoLoginDelayMs
	}
	if c.AccessCode == "" {
		c.AccessCode = def.AccessCode
	}
}

// ParseConfig reads a configuration document on top of the defaults, so
// fields missing from data keep their default value.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides cfg with the DOS_* environment variables that are set.
func applyEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		log.WarningLog.Printf("ignoring environment overrides: %v", err)
	}
	cfg.normalize()
}

// fromDefaults is the configuration used when the file cannot be used.
func fromDefaults() *Config {
	cfg := DefaultConfig()
	applyEnv(cfg)
	return cfg
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return fromDefaults()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			if saveErr := saveConfig(DefaultConfig()); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return fromDefaults()
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return fromDefaults()
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return fromDefaults()
	}

	applyEnv(cfg)
	return cfg
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
