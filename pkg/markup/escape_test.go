package markup

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "plain text", "plain text"},
		{"all significant characters", `&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},
		{"tag", "<script>alert('x')</script>", "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;"},
		{"ampersand first", "a&amp;b", "a&amp;amp;b"},
		{"unicode untouched", "café — ünïcode", "café — ünïcode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Fatalf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeValue(t *testing.T) {
	if got := EscapeValue(nil); got != "" {
		t.Fatalf("EscapeValue(nil) = %q, want empty", got)
	}
	if got := EscapeValue(42); got != "42" {
		t.Fatalf("EscapeValue(42) = %q, want 42", got)
	}
	if got := EscapeValue("<b>"); got != "&lt;b&gt;" {
		t.Fatalf("EscapeValue(<b>) = %q", got)
	}
}
