package nixgen

import (
	"strings"
	"testing"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "nixbox", `"nixbox"`},
		{"empty", "", `""`},
		{"embedded quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `C:\path`, `"C:\\path"`},
		{"interpolation", "a${b}c", `"a\${b}c"`},
		{"dollar without brace", "cost $5", `"cost $5"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"unicode", "køver-маш", `"køver-маш"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quote("field", tt.input)
			if err != nil {
				t.Fatalf("Quote failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Quote(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

// TestQuotePrintableRoundTrip verifies every printable ASCII character
// survives quoting: the escaped form must still denote the original string
// under Nix's own escape rules.
func TestQuotePrintableRoundTrip(t *testing.T) {
	for r := rune(0x20); r < 0x7f; r++ {
		s := string(r)
		q, err := Quote("field", s)
		if err != nil {
			t.Fatalf("Quote(%q) failed: %v", s, err)
		}
		if !strings.HasPrefix(q, `"`) || !strings.HasSuffix(q, `"`) {
			t.Fatalf("Quote(%q) = %s is not a quoted literal", s, q)
		}

		inner := q[1 : len(q)-1]
		switch r {
		case '"':
			if inner != `\"` {
				t.Errorf("quote character escaped as %s", inner)
			}
		case '\\':
			if inner != `\\` {
				t.Errorf("backslash escaped as %s", inner)
			}
		default:
			if inner != s {
				t.Errorf("Quote(%q) changed content to %s", s, inner)
			}
		}
	}
}

func TestQuoteRejectsControlCharacters(t *testing.T) {
	for _, input := range []string{"a\x00b", "bell\x07", "\x1b[31m"} {
		_, err := Quote("hostname", input)
		if err == nil {
			t.Errorf("Expected error for %q", input)
			continue
		}
		synthErr, ok := err.(*SynthesisError)
		if !ok {
			t.Errorf("Expected SynthesisError, got %T", err)
			continue
		}
		if synthErr.Field != "hostname" {
			t.Errorf("Expected field 'hostname', got %q", synthErr.Field)
		}
	}
}

func TestAttrName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"alice", "alice"},
		{"sda", "sda"},
		{"nvme0n1", "nvme0n1"},
		{"user-name", "user-name"},
		{"1user", `"1user"`},
		{"a b", `"a b"`},
		{"", `""`},
	}

	for _, tt := range tests {
		got, err := AttrName("field", tt.input)
		if err != nil {
			t.Fatalf("AttrName(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("AttrName(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestBool(t *testing.T) {
	if Bool(true) != "true" || Bool(false) != "false" {
		t.Error("Bool literal mismatch")
	}
}
