/*
Package config holds the configuration of an editing session: the title
and script flavour of exported pages, the color theme and the palette of
elements offered for insertion.

Configuration is read from YAML, then overridden from the environment:

    PAGEDIT_TITLE        title of exported pages
    PAGEDIT_SCRIPT_MODE  "jquery" or "js"
    PAGEDIT_THEME        "auto", "dark" or "light"
    PAGEDIT_ACCENT       accent color of the theme

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/npillmayer/pagedit/dom/style"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'pagedit.config'.
func tracer() tracing.Trace {
	return tracing.Select("pagedit.config")
}

// Errors flagged by validation.
var (
	ErrUnknownScriptMode = errors.New("unknown script mode")
	ErrUnknownScheme     = errors.New("unknown theme scheme")
	ErrInvalidAccent     = errors.New("accent color is not a color")
	ErrInvalidButton     = errors.New("invalid palette button")
)

// ScriptMode selects the flavour of scripts in exported pages.
type ScriptMode string

// Script modes
const (
	JQuery ScriptMode = "jquery" // scripts run in a jQuery ready-handler
	JS     ScriptMode = "js"     // plain JavaScript
)

// ParseScriptMode checks a script mode given as string.
func ParseScriptMode(s string) (ScriptMode, error) {
	switch m := ScriptMode(strings.ToLower(strings.TrimSpace(s))); m {
	case JQuery, JS:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScriptMode, s)
}

// Scheme is the color scheme of a theme.
type Scheme string

// Color schemes
const (
	Auto  Scheme = "auto" // follow the platform's dark-mode preference
	Dark  Scheme = "dark"
	Light Scheme = "light"
)

// ParseScheme checks a color scheme given as string.
func ParseScheme(s string) (Scheme, error) {
	switch sch := Scheme(strings.ToLower(strings.TrimSpace(s))); sch {
	case Auto, Dark, Light:
		return sch, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}

// SchemeFromControl maps the id of a theme radio control (`theme-auto`,
// `theme-dark`, `theme-light`) to a scheme.
func SchemeFromControl(id string) (Scheme, bool) {
	switch id {
	case "theme-auto":
		return Auto, true
	case "theme-dark":
		return Dark, true
	case "theme-light":
		return Light, true
	}
	return "", false
}

// DefaultAccentColor is the accent color of a theme created on first use.
const DefaultAccentColor = "#007bff"

// Theme is the color theme of the page.
type Theme struct {
	Scheme      Scheme `yaml:"scheme"`
	AccentColor string `yaml:"accent-color,omitempty"`
}

// Button is an entry of the element palette.
type Button struct {
	Label      string `yaml:"label"`
	Tag        string `yaml:"tag"`
	Class      string `yaml:"class,omitempty"`
	Attributes string `yaml:"attributes,omitempty"` // JSON encoded map
}

// DecodeAttributes decodes the JSON encoded attribute map of a button.
// A button without attributes results in an empty map.
func (b Button) DecodeAttributes() (map[string]string, error) {
	if strings.TrimSpace(b.Attributes) == "" {
		return map[string]string{}, nil
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(b.Attributes), &raw); err != nil {
		return nil, fmt.Errorf("%w: attributes of <%s>: %v", ErrInvalidButton, b.Tag, err)
	}
	attrs := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			attrs[k] = s
		} else {
			attrs[k] = fmt.Sprint(v)
		}
	}
	return attrs, nil
}

// Config is the configuration of an editing session.
type Config struct {
	ScriptMode ScriptMode `yaml:"script-mode"`
	Title      string     `yaml:"title"`
	Theme      *Theme     `yaml:"theme,omitempty"`
	Palette    []Button   `yaml:"palette,omitempty"`
}

// Default returns the default configuration: plain JavaScript, a title of
// "My Webpage" and no theme.
func Default() *Config {
	return &Config{
		ScriptMode: JS,
		Title:      "My Webpage",
		Palette:    DefaultPalette(),
	}
}

// DefaultPalette returns the elements offered for insertion by default.
func DefaultPalette() []Button {
	return []Button{
		{Label: "Heading", Tag: "h2"},
		{Label: "Paragraph", Tag: "p"},
		{Label: "Button", Tag: "button", Class: "btn", Attributes: `{"type":"button"}`},
		{Label: "Image", Tag: "img", Attributes: `{"src":"https://placehold.co/200","alt":"Image"}`},
		{Label: "Link", Tag: "a", Attributes: `{"href":"#"}`},
		{Label: "Container", Tag: "div", Class: "container"},
	}
}

// EnsureTheme returns the theme, creating the default theme (scheme auto,
// accent DefaultAccentColor) if none is set.
func (c *Config) EnsureTheme() *Theme {
	if c.Theme == nil {
		c.Theme = &Theme{Scheme: Auto, AccentColor: DefaultAccentColor}
	}
	return c.Theme
}

// Validate checks the configuration. Script mode and scheme are
// normalized to their canonical lower-case names.
func (c *Config) Validate() error {
	mode, err := ParseScriptMode(string(c.ScriptMode))
	if err != nil {
		return err
	}
	c.ScriptMode = mode
	if c.Theme != nil {
		sch, err := ParseScheme(string(c.Theme.Scheme))
		if err != nil {
			return err
		}
		c.Theme.Scheme = sch
		if c.Theme.AccentColor != "" && style.Property(c.Theme.AccentColor).Color() == nil {
			return fmt.Errorf("%w: %q", ErrInvalidAccent, c.Theme.AccentColor)
		}
	}
	for i, b := range c.Palette {
		if strings.TrimSpace(b.Tag) == "" {
			return fmt.Errorf("%w: button %d has no tag", ErrInvalidButton, i)
		}
	}
	return nil
}

// configEnv holds raw env values for overrides.
type configEnv struct {
	Title      string `env:"PAGEDIT_TITLE"`
	ScriptMode string `env:"PAGEDIT_SCRIPT_MODE"`
	Theme      string `env:"PAGEDIT_THEME"`
	Accent     string `env:"PAGEDIT_ACCENT"`
}

// Load reads the configuration from a YAML file, applies environment
// overrides and validates the result. With an empty path, the defaults
// are used instead of a file.
func Load(path string) (*Config, error) {
	if path == "" {
		return finish(Default())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open configuration: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the configuration in YAML format, applies environment
// overrides and validates the result. Settings missing from the input keep
// their defaults.
func Parse(r io.Reader) (*Config, error) {
	conf := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot parse configuration: %w", err)
	}
	return finish(conf)
}

func finish(conf *Config) (*Config, error) {
	if err := applyEnv(conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("configuration: title=%q, script=%s", conf.Title, conf.ScriptMode)
	return conf, nil
}

func applyEnv(conf *Config) error {
	var e configEnv
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if e.Title != "" {
		conf.Title = e.Title
	}
	if e.ScriptMode != "" {
		mode, err := ParseScriptMode(e.ScriptMode)
		if err != nil {
			return err
		}
		conf.ScriptMode = mode
	}
	if e.Theme != "" {
		scheme, err := ParseScheme(e.Theme)
		if err != nil {
			return err
		}
		conf.EnsureTheme().Scheme = scheme
	}
	if e.Accent != "" {
		conf.EnsureTheme().AccentColor = e.Accent
	}
	return nil
}
