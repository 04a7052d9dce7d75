package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useHome points the config directory at a fresh temp dir.
func useHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return filepath.Join(home, configDirName)
}

func TestLoadConfigCreatesDefaults(t *testing.T) {
	dir := useHome(t)

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	assert.NoError(t, err, "default config written")
}

func TestParseConfigAcceptsComments(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		// talk to me in Korean
		"language": "ko",
		/* the cat is loud */
		"sound": false,
	}`))
	require.NoError(t, err)
	assert.Equal(t, "ko", cfg.Language)
	assert.False(t, cfg.Sound)
	assert.Equal(t, defaultAccessCode, cfg.AccessCode, "missing fields keep defaults")
	assert.Len(t, cfg.Events, 2)
}

func TestLoadConfigBacksUpCorruptFile(t *testing.T) {
	dir := useHome(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0644))

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig(), cfg)
	backups, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := useHome(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte(`{"language": "ja", "mobile_width": 70}`), 0644))
	t.Setenv("DOS_LANG", "ko")
	t.Setenv("DOS_SOUND", "false")
	t.Setenv("DOS_AUTO_LOGIN_MS", "2500")
	t.Setenv("DOS_RECOVERY_MODIFIER", "Shift")

	cfg := LoadConfig()

	assert.Equal(t, "ko", cfg.Language)
	assert.False(t, cfg.Sound)
	assert.Equal(t, 70, cfg.MobileWidth, "unset variables leave the file value")
	assert.Equal(t, 2500*time.Millisecond, cfg.AutoLoginDelay())
	assert.Equal(t, ModifierShift, cfg.RecoveryModifier)
}

func TestBadEnvironmentIsIgnored(t *testing.T) {
	useHome(t)
	t.Setenv("DOS_MOBILE_WIDTH", "wide")

	cfg := LoadConfig()

	assert.Equal(t, defaultMobileWidth, cfg.MobileWidth)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{UIScale: "HUGE", RecoveryModifier: "meta", MobileWidth: -1}
	cfg.normalize()

	assert.Equal(t, ScaleNormal, cfg.UIScale)
	assert.Equal(t, ModifierAlt, cfg.RecoveryModifier)
	assert.Equal(t, defaultMobileWidth, cfg.MobileWidth)
	assert.Equal(t, defaultAutoLoginDelay, cfg.AutoLoginDelayMs)
	assert.Equal(t, defaultAccessCode, cfg.AccessCode)
}

func TestDefaultRecoveryModifierLeavesShiftToTerminal(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ModifierAlt, cfg.RecoveryModifier)
	assert.False(t, cfg.RecoveryHeld(false, false, true), "shift+drag stays text selection")
}

func TestRecoveryHeld(t *testing.T) {
	tests := []struct {
		modifier         string
		alt, ctrl, shift bool
		want             bool
	}{
		{modifier: ModifierAlt, alt: true, want: true},
		{modifier: ModifierAlt, shift: true, want: false},
		{modifier: ModifierCtrl, ctrl: true, want: true},
		{modifier: ModifierShift, shift: true, want: true},
		{modifier: ModifierShift, alt: true, want: false},
	}
	for _, tt := range tests {
		cfg := &Config{RecoveryModifier: tt.modifier}
		assert.Equal(t, tt.want, cfg.RecoveryHeld(tt.alt, tt.ctrl, tt.shift), "%+v", tt)
	}
}

func TestStateRoundTrip(t *testing.T) {
	useHome(t)

	s := LoadState()
	assert.False(t, s.GetTutorialComplete())
	require.NoError(t, s.SetTutorialComplete(true))
	require.NoError(t, s.SetLastLanguage("ja"))

	again := LoadState()
	assert.True(t, again.GetTutorialComplete())
	assert.Equal(t, "ja", again.GetLastLanguage())

	require.NoError(t, ResetState())
	assert.False(t, LoadState().GetTutorialComplete())
}

func TestCorruptStateFallsBack(t *testing.T) {
	dir := useHome(t)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFileName), []byte("]]"), 0644))

	s := LoadState()

	assert.False(t, s.GetTutorialComplete())
	assert.NoError(t, s.SetTutorialComplete(true), "a corrupt file is overwritten on save")
}

func TestFileLock(t *testing.T) {
	dir := t.TempDir()
	l := NewFileLock(dir)

	require.NoError(t, l.Lock())
	assert.True(t, l.Held())
	assert.Error(t, l.Lock(), "not reentrant")
	require.NoError(t, l.Unlock())
	assert.False(t, l.Held())
	assert.NoError(t, l.Unlock(), "unlocking twice is harmless")

	require.NoError(t, l.RLock())
	other := NewFileLock(dir)
	require.NoError(t, other.RLock(), "shared locks coexist")
	require.NoError(t, other.Unlock())
	require.NoError(t, l.Unlock())
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := useHome(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *Config, 8)
	require.NoError(t, Watch(ctx, func(c *Config) { got <- c }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"language": "ja"}`), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-got:
			if c.Language == "ja" {
				return
			}
		case <-deadline:
			t.Fatal("config change was not picked up")
		}
	}
}
