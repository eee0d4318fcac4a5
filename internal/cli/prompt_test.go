//file: internal/cli/prompt_test.go

package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompterFrom(strings.NewReader("  hello world  \n"), &out)

	got, err := p.Ask("Question?")
	if err != nil {
		t.Fatalf("Ask() error = %v, want nil", err)
	}
	if got != "hello world" {
		t.Errorf("Ask() = %q, want trimmed %q", got, "hello world")
	}
	if !strings.Contains(out.String(), "Question?") {
		t.Errorf("prompt output %q does not contain the question", out.String())
	}
}

func TestAskWithDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty answer takes the default", input: "\n", want: "fallback"},
		{name: "answer wins over default", input: "custom\n", want: "custom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompterFrom(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.AskWithDefault("Q", "fallback")
			if err != nil {
				t.Fatalf("AskWithDefault() error = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("AskWithDefault() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Y\n", want: true},
		{input: "yes\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "whatever\n", want: false},
	}
	for _, tt := range tests {
		p := NewPrompterFrom(strings.NewReader(tt.input), &bytes.Buffer{})
		got, err := p.Confirm("Sure?")
		if err != nil {
			t.Fatalf("Confirm(%q) error = %v, want nil", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
