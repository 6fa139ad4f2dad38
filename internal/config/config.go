package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"rtesession/internal/tui/actions"
	"rtesession/internal/tui/focus"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Presentation selects how the three screens are laid out. Selection
// semantics are identical across styles.
type Presentation string

const (
	Tabs  Presentation = "tabs"
	Stack Presentation = "stack"
	Panel Presentation = "panel"
)

// EraseControl decides where the erase action is reachable.
type EraseControl string

const (
	EraseFromToolbar  EraseControl = "toolbar"   // toolbar button / shortcut in the editor
	EraseOnConfigPage EraseControl = "dedicated" // dedicated control on the config screen
)

// CustomAction is a caller-defined toolbar action. Insert, when set, is the
// text the host inserts at the cursor when the action fires.
type CustomAction struct {
	ID     string `yaml:"id"`
	Key    string `yaml:"key"`
	Label  string `yaml:"label,omitempty"`
	Insert string `yaml:"insert,omitempty"`
}

// sessionKeys are bound by the session in every presentation: quit, help,
// back and the built-in toolbar actions.
var sessionKeys = []string{"ctrl+c", "f1", "esc", "ctrl+o", "ctrl+u", "ctrl+y", "ctrl+x"}

// tabKeys cycle screens under the tabs presentation.
var tabKeys = []string{"tab", "shift+tab"}

// ReservedKeys returns the keys custom actions cannot bind under p.
func ReservedKeys(p Presentation) []string {
	keys := append([]string(nil), sessionKeys...)
	if p == Tabs {
		keys = append(keys, tabKeys...)
	}
	return keys
}

// Theme holds hex colours used by every widget.
type Theme struct {
	Primary string `yaml:"primary,omitempty"`
	Success string `yaml:"success,omitempty"`
	Danger  string `yaml:"danger,omitempty"`
	Warning string `yaml:"warning,omitempty"`
	Muted   string `yaml:"muted,omitempty"`
}

// Config is the session host configuration.
type Config struct {
	Presentation      Presentation   `yaml:"presentation,omitempty"`
	DebugLabel        string         `yaml:"debugLabel,omitempty"`
	EraseControl      EraseControl   `yaml:"eraseControl,omitempty"`
	FocusSettleDelay  *time.Duration `yaml:"focusSettleDelay,omitempty"` // nil means focus.DefaultSettle
	ToastDuration     time.Duration  `yaml:"toastDuration,omitempty"`
	CopiedMessage     string         `yaml:"copiedMessage,omitempty"`
	CopyFailedMessage string         `yaml:"copyFailedMessage,omitempty"`
	PanelRatio        float64        `yaml:"panelRatio,omitempty"`
	SourceStyle       string         `yaml:"sourceStyle,omitempty"`
	EditMode          *bool          `yaml:"editMode,omitempty"`
	HighlightFocus    *bool          `yaml:"highlightFocus,omitempty"`
	CustomActions     []CustomAction `yaml:"customActions,omitempty"`
	Theme             Theme          `yaml:"theme,omitempty"`
	NoColor           bool           `yaml:"noColor,omitempty"`
}

// SettleDelay is the delay before the editor takes focus.
func (c Config) SettleDelay() time.Duration {
	if c.FocusSettleDelay == nil {
		return focus.DefaultSettle
	}
	return *c.FocusSettleDelay
}

// Messages returns the copy notification texts, filling unset ones with
// the stock texts.
func (c Config) Messages() actions.Messages {
	m := actions.DefaultMessages()
	if c.CopiedMessage != "" {
		m.Copied = c.CopiedMessage
	}
	if c.CopyFailedMessage != "" {
		m.CopyFailed = c.CopyFailedMessage
	}
	return m
}

// Default returns the built-in configuration.
func Default() Config {
	edit, highlight := true, false
	settle := focus.DefaultSettle
	return Config{
		Presentation:     Tabs,
		DebugLabel:       "Highlight focus",
		EraseControl:     EraseFromToolbar,
		FocusSettleDelay: &settle,
		ToastDuration:    2 * time.Second,
		PanelRatio:       0.9,
		SourceStyle:      "dark",
		EditMode:         &edit,
		HighlightFocus:   &highlight,
		Theme: Theme{
			Primary: "#3D6DFF",
			Success: "#2AA876",
			Danger:  "#D9534F",
			Warning: "#F0AD4E",
			Muted:   "#6C757D",
		},
	}
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var sourceStyles = map[string]bool{"dark": true, "light": true, "notty": true, "ascii": true, "dracula": true, "tokyo-night": true, "pink": true}

// Validate checks enum fields, ranges and colours.
func (c Config) Validate() error {
	switch c.Presentation {
	case Tabs, Stack, Panel:
	default:
		return fmt.Errorf("%w: presentation %q (want tabs, stack or panel)", ErrInvalid, c.Presentation)
	}
	switch c.EraseControl {
	case EraseFromToolbar, EraseOnConfigPage:
	default:
		return fmt.Errorf("%w: eraseControl %q (want toolbar or dedicated)", ErrInvalid, c.EraseControl)
	}
	if strings.TrimSpace(c.DebugLabel) == "" {
		return fmt.Errorf("%w: debugLabel must not be empty", ErrInvalid)
	}
	if c.SettleDelay() < 0 || c.ToastDuration <= 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalid)
	}
	if c.PanelRatio <= 0 || c.PanelRatio > 1 {
		return fmt.Errorf("%w: panelRatio %.2f out of (0,1]", ErrInvalid, c.PanelRatio)
	}
	if !sourceStyles[c.SourceStyle] {
		return fmt.Errorf("%w: sourceStyle %q", ErrInvalid, c.SourceStyle)
	}
	seen := map[string]bool{}
	for _, k := range ReservedKeys(c.Presentation) {
		seen[k] = true
	}
	for i, a := range c.CustomActions {
		if strings.TrimSpace(a.ID) == "" || strings.TrimSpace(a.Key) == "" {
			return fmt.Errorf("%w: customActions[%d] needs id and key", ErrInvalid, i)
		}
		if actions.Builtin(actions.ID(a.ID)) {
			return fmt.Errorf("%w: customActions[%d] id %q is a built-in action", ErrInvalid, i, a.ID)
		}
		if seen[a.Key] {
			return fmt.Errorf("%w: customActions[%d] key %q is already bound", ErrInvalid, i, a.Key)
		}
		seen[a.Key] = true
	}
	for name, col := range map[string]string{
		"primary": c.Theme.Primary, "success": c.Theme.Success, "danger": c.Theme.Danger,
		"warning": c.Theme.Warning, "muted": c.Theme.Muted,
	} {
		if !hexColor.MatchString(col) {
			return fmt.Errorf("%w: theme.%s %q is not #RRGGBB", ErrInvalid, name, col)
		}
	}
	return nil
}

// Parse decodes a YAML document into a partial config.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config YAML: %w", err)
	}
	return c, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Save writes c as YAML. Used by `rtesession config init`.
func Save(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
