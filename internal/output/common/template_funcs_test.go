package common

import (
	"bytes"
	"testing"
	"text/template"
)

func TestKebab(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"brandBackgroundPrimary", "brand-background-primary"},
		{"brandFocusRing", "brand-focus-ring"},
		{"plain", "plain"},
		{"Leading", "leading"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Kebab(tt.input); got != tt.want {
			t.Errorf("Kebab(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTemplateFuncs(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"hex", `{{ hex "6366f1" }}`, "#6366F1"},
		{"hexNoHash", `{{ hexNoHash "#6366f1" }}`, "6366F1"},
		{"rgb", `{{ rgb "#FF8000" }}`, "rgb(255, 128, 0)"},
		{"rgbSpaces", `{{ rgbSpaces "#000000" }}`, "0 0 0"},
		{"grade", `{{ wcag (contrast "#000000" "#FFFFFF") }}`, "AAA"},
		{"trimPrefix", `{{ "brand-100" | trimPrefix "brand-" }}`, "100"},
		{"kebab", `{{ kebab "brandContentPrimary" }}`, "brand-content-primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := template.New(tt.name).Funcs(TemplateFuncs()).Parse(tt.tmpl)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, nil); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRGBInvalid(t *testing.T) {
	if _, err := rgbFunc("nope"); err == nil {
		t.Error("rgbFunc() expected an error for malformed input")
	}
}
