package config

import (
	"fmt"
	"os"
	"path/filepath"

	"rtesession/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/rtesession"
	projectConfigDir = ".rtesession"
	configFileName   = "config.yaml"
)

// Load layers defaults, the user file, the project file and finally the
// explicit file (if non-empty), then validates the result.
func Load(explicit string) (Config, error) {
	cfg := Default()

	for _, p := range []func() (string, error){userConfigPath, projectConfigPath} {
		path, err := p()
		if err != nil {
			logging.Warn("Config", "could not determine config path: %v", err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		layer, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		logging.Debug("Config", "applied %s", path)
		cfg = Merge(cfg, layer)
	}

	if explicit != "" {
		layer, err := loadFile(explicit)
		if err != nil {
			return Config{}, err
		}
		cfg = Merge(cfg, layer)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UserConfigPath returns the per-user config file location.
func UserConfigPath() (string, error) { return userConfigPath() }

var userConfigPath = func() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

var projectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// Merge overlays the non-zero fields of over onto base. Pointer fields are
// taken whenever the layer names them, so an explicit 0 or false wins.
// Custom actions are merged by key; a later layer rebinding a key replaces
// the earlier action.
func Merge(base, over Config) Config {
	out := base
	if over.Presentation != "" {
		out.Presentation = over.Presentation
	}
	if over.DebugLabel != "" {
		out.DebugLabel = over.DebugLabel
	}
	if over.EraseControl != "" {
		out.EraseControl = over.EraseControl
	}
	if over.FocusSettleDelay != nil {
		v := *over.FocusSettleDelay
		out.FocusSettleDelay = &v
	}
	if over.ToastDuration != 0 {
		out.ToastDuration = over.ToastDuration
	}
	if over.CopiedMessage != "" {
		out.CopiedMessage = over.CopiedMessage
	}
	if over.CopyFailedMessage != "" {
		out.CopyFailedMessage = over.CopyFailedMessage
	}
	if over.PanelRatio != 0 {
		out.PanelRatio = over.PanelRatio
	}
	if over.SourceStyle != "" {
		out.SourceStyle = over.SourceStyle
	}
	if over.EditMode != nil {
		v := *over.EditMode
		out.EditMode = &v
	}
	if over.HighlightFocus != nil {
		v := *over.HighlightFocus
		out.HighlightFocus = &v
	}
	if over.NoColor {
		out.NoColor = true
	}
	out.Theme = mergeTheme(base.Theme, over.Theme)

	if len(over.CustomActions) > 0 {
		byKey := map[string]int{}
		merged := make([]CustomAction, 0, len(base.CustomActions)+len(over.CustomActions))
		for _, a := range base.CustomActions {
			byKey[a.Key] = len(merged)
			merged = append(merged, a)
		}
		for _, a := range over.CustomActions {
			if i, ok := byKey[a.Key]; ok {
				merged[i] = a
				continue
			}
			byKey[a.Key] = len(merged)
			merged = append(merged, a)
		}
		out.CustomActions = merged
	}
	return out
}

func mergeTheme(base, over Theme) Theme {
	pick := func(b, o string) string {
		if o != "" {
			return o
		}
		return b
	}
	return Theme{
		Primary: pick(base.Primary, over.Primary),
		Success: pick(base.Success, over.Success),
		Danger:  pick(base.Danger, over.Danger),
		Warning: pick(base.Warning, over.Warning),
		Muted:   pick(base.Muted, over.Muted),
	}
}

// String renders a short human summary used by `config show`.
func (c Config) String() string {
	return fmt.Sprintf("presentation=%s debugLabel=%q eraseControl=%s focusSettleDelay=%s toastDuration=%s panelRatio=%.2f sourceStyle=%s customActions=%d",
		c.Presentation, c.DebugLabel, c.EraseControl, c.SettleDelay(), c.ToastDuration, c.PanelRatio, c.SourceStyle, len(c.CustomActions))
}
