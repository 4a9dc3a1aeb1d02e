package terminal

import (
	"strings"

	"termgraph/render"
)

// Capabilities describes what the output terminal can display.
type Capabilities struct {
	Name      string
	UTF8      bool   // locale uses UTF-8
	EastAsian bool   // CJK locale, box-drawing glyphs may render two cells wide
	NoColor   bool   // NO_COLOR is set
	Forced    string // TERMGRAPH_GLYPHS override, if valid
}

// DetectCapabilities inspects the environment through getenv.
// TERMGRAPH_GLYPHS=ascii|unicode overrides glyph detection.
func DetectCapabilities(getenv func(string) string) Capabilities {
	caps := Capabilities{
		Name:      getenv("TERM"),
		UTF8:      detectUTF8Locale(getenv),
		EastAsian: detectCJKEnvironment(getenv),
		NoColor:   getenv("NO_COLOR") != "",
	}
	if prog := getenv("TERM_PROGRAM"); prog != "" {
		caps.Name = prog
	}

	switch forced := getenv("TERMGRAPH_GLYPHS"); forced {
	case render.ASCIIStyle.Name, render.UnicodeStyle.Name:
		caps.Forced = forced
	}
	return caps
}

// Glyphs names the style to use when glyphs are set to auto.
func (c Capabilities) Glyphs() string {
	if c.Forced != "" {
		return c.Forced
	}
	if !c.UTF8 || c.EastAsian || c.Name == "linux" || c.Name == "dumb" {
		return render.ASCIIStyle.Name
	}
	return render.UnicodeStyle.Name
}

// locale returns the first non-empty locale variable, as setlocale does.
func locale(getenv func(string) string) string {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if value := getenv(env); value != "" {
			return value
		}
	}
	return ""
}

func detectUTF8Locale(getenv func(string) string) bool {
	upper := strings.ToUpper(locale(getenv))
	return strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
}

func detectCJKEnvironment(getenv func(string) string) bool {
	switch strings.Split(locale(getenv), "_")[0] {
	case "ja", "ko", "zh":
		return true
	}
	return getenv("EAST_ASIAN_AMBIGUOUS") == "2"
}
