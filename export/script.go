package export

import (
	"strings"

	"github.com/npillmayer/pagedit/config"
)

const jqueryThemeScript = `(function() {
    const mediaQuery = window.matchMedia('(prefers-color-scheme: dark)');
    const setTheme = (isDark) => {
        $('html').attr('data-bs-theme', isDark ? 'dark' : 'light');
    };
    setTheme(mediaQuery.matches);
    mediaQuery.addEventListener('change', (e) => {
        setTheme(e.matches);
    });
})();`

const plainThemeScript = `(function() {
    const mediaQuery = window.matchMedia('(prefers-color-scheme: dark)');
    const setTheme = (isDark) => {
        document.documentElement.setAttribute('data-bs-theme', isDark ? 'dark' : 'light');
    };
    setTheme(mediaQuery.matches);
    mediaQuery.addEventListener('change', (e) => {
        setTheme(e.matches);
    });
})();`

// ThemeScript returns the script following the platform's dark-mode
// preference, for themes with scheme `auto`. Other themes, and no theme,
// need no script.
func ThemeScript(mode config.ScriptMode, theme *config.Theme) string {
	if theme == nil || theme.Scheme != config.Auto {
		return ""
	}
	if mode == config.JQuery {
		return jqueryThemeScript
	}
	return plainThemeScript
}

// GenerateScript wraps the theme script and the user script for the
// script mode: a jQuery ready-handler, or a function run as soon as the
// DOM is loaded.
func GenerateScript(conf *config.Config, user string) string {
	body := join(ThemeScript(conf.ScriptMode, conf.Theme), user)
	if conf.ScriptMode == config.JQuery {
		return "$(function() {\n" + indent(body, "    ") + "\n});"
	}
	var b strings.Builder
	b.WriteString("(function() {\n")
	b.WriteString("    function runPage() {\n")
	b.WriteString(indent(body, "        "))
	b.WriteString("\n    }\n")
	b.WriteString("    if (document.readyState === 'loading') {\n")
	b.WriteString("        document.addEventListener('DOMContentLoaded', runPage);\n")
	b.WriteString("    } else {\n")
	b.WriteString("        runPage();\n")
	b.WriteString("    }\n")
	b.WriteString("})();")
	return b.String()
}

func join(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}

func indent(s, prefix string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
