package terminal

import "testing"

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetectCapabilities_Glyphs(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"utf8 xterm", map[string]string{"LANG": "en_US.UTF-8", "TERM": "xterm-256color"}, "unicode"},
		{"lowercase utf8", map[string]string{"LANG": "C.utf8"}, "unicode"},
		{"modifier", map[string]string{"LANG": "de_DE.UTF-8@euro"}, "unicode"},
		{"no locale", map[string]string{"TERM": "xterm"}, "ascii"},
		{"latin1", map[string]string{"LANG": "en_US.ISO-8859-1"}, "ascii"},
		{"LC_ALL wins", map[string]string{"LC_ALL": "C", "LANG": "en_US.UTF-8"}, "ascii"},
		{"linux console", map[string]string{"LANG": "en_US.UTF-8", "TERM": "linux"}, "ascii"},
		{"dumb", map[string]string{"LANG": "en_US.UTF-8", "TERM": "dumb"}, "ascii"},
		{"cjk locale", map[string]string{"LANG": "ja_JP.UTF-8"}, "ascii"},
		{"ambiguous wide", map[string]string{"LANG": "en_US.UTF-8", "EAST_ASIAN_AMBIGUOUS": "2"}, "ascii"},
		{"forced unicode", map[string]string{"TERMGRAPH_GLYPHS": "unicode", "TERM": "dumb"}, "unicode"},
		{"forced ascii", map[string]string{"TERMGRAPH_GLYPHS": "ascii", "LANG": "en_US.UTF-8"}, "ascii"},
		{"bad override ignored", map[string]string{"TERMGRAPH_GLYPHS": "braille", "LANG": "en_US.UTF-8"}, "unicode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCapabilities(env(tt.vars)).Glyphs(); got != tt.want {
				t.Errorf("Glyphs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectCapabilities_NoColor(t *testing.T) {
	if DetectCapabilities(env(nil)).NoColor {
		t.Error("NoColor set without NO_COLOR")
	}
	if !DetectCapabilities(env(map[string]string{"NO_COLOR": "1"})).NoColor {
		t.Error("NO_COLOR ignored")
	}
}

func TestDetectCapabilities_Name(t *testing.T) {
	caps := DetectCapabilities(env(map[string]string{"TERM": "xterm", "TERM_PROGRAM": "iTerm.app"}))
	if caps.Name != "iTerm.app" {
		t.Errorf("Name = %q, want iTerm.app", caps.Name)
	}
}
