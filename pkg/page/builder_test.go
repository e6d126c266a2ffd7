package page

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"
)

func TestBuilder_BuildBasicPage(t *testing.T) {
	builder := New()

	got, err := builder.Build(context.Background(), Page{
		Lang:        "en",
		Title:       "Hello",
		Description: "A test page",
		Nav:         []NavItem{{Label: "Home", Href: "/"}},
		Sections: []Section{
			{ID: "intro", Heading: "Intro", Body: "Welcome\nhome"},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := strings.Join([]string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"  <head>",
		`    <meta charset="utf-8">`,
		`    <meta name="viewport" content="width=device-width, initial-scale=1">`,
		"    <title>Hello</title>",
		`    <meta name="description" content="A test page">`,
		"  </head>",
		`  <body class="pagegen-body">`,
		`    <header class="pagegen-header">`,
		"      <h1>Hello</h1>",
		"    </header>",
		`    <nav class="pagegen-nav">`,
		"      <ul>",
		`        <li><a href="/">Home</a></li>`,
		"      </ul>",
		"    </nav>",
		`    <main class="pagegen-main">`,
		`      <section id="intro" class="pagegen-section">`,
		"        <h2>Intro</h2>",
		"        Welcome",
		"        home",
		"      </section>",
		"    </main>",
		"  </body>",
		"</html>",
	}, "\n")

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_BuildEscapesValues(t *testing.T) {
	builder := New()

	got, err := builder.Build(context.Background(), Page{
		Title: `Tom & "Jerry" <LLC>`,
		Sections: []Section{
			{Heading: "a<b", Body: "1 < 2 & 3 > 2"},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, want := range []string{
		"<title>Tom &amp; &quot;Jerry&quot; &lt;LLC&gt;</title>",
		"<h2>a&lt;b</h2>",
		"1 &lt; 2 &amp; 3 &gt; 2",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<LLC>") {
		t.Fatalf("unescaped title leaked into output:\n%s", got)
	}
}

func TestBuilder_BuildWithThemeAndFooter(t *testing.T) {
	builder := New(
		WithTheme(&theme.RendererConfig{
			Theme:   "acme",
			Variant: "dark",
			CSSVars: map[string]string{"--brand": "#123456"},
		}),
	)

	got, err := builder.Build(context.Background(), Page{
		Title:       "Themed",
		Footer:      "<p>bye</p>",
		GeneratedAt: "2024-03-09",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, want := range []string{
		`<body class="pagegen-body theme-acme theme-acme--dark">`,
		"<style>",
		"--brand: #123456;",
		"<p>bye</p>",
		"Generated on March 9, 2024",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestBuilder_BuildOmitsEmptyRegions(t *testing.T) {
	builder := New()

	got, err := builder.Build(context.Background(), Page{Title: "Bare"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, banned := range []string{"<nav", "<main", "<footer"} {
		if strings.Contains(got, banned) {
			t.Fatalf("empty region rendered %q:\n%s", banned, got)
		}
	}
	if !strings.Contains(got, "<h1>Bare</h1>") {
		t.Fatalf("derived header missing:\n%s", got)
	}
}

func TestBuilder_BuildRawSectionSanitized(t *testing.T) {
	builder := New()

	got, err := builder.Build(context.Background(), Page{
		Title: "Raw",
		Sections: []Section{
			{ID: "raw", Body: "<p>keep</p><script>drop()</script>", Raw: true},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !strings.Contains(got, "<p>keep</p>") {
		t.Fatalf("sanitized markup missing:\n%s", got)
	}
	if strings.Contains(got, "script") {
		t.Fatalf("script survived sanitization:\n%s", got)
	}
}

func TestBuilder_BuildCustomChromeClasses(t *testing.T) {
	builder := New(WithChromeClasses(ChromeClasses{Body: "site", Section: "block"}))

	got, err := builder.Build(context.Background(), Page{
		Title:    "Custom",
		Sections: []Section{{Heading: "One", Body: "x"}},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !strings.Contains(got, `<body class="site">`) {
		t.Fatalf("custom body class missing:\n%s", got)
	}
	if !strings.Contains(got, `class="block"`) {
		t.Fatalf("custom section class missing:\n%s", got)
	}
	// untouched fields keep defaults
	if !strings.Contains(got, `<header class="pagegen-header">`) {
		t.Fatalf("default header class missing:\n%s", got)
	}
}

func TestBuilder_BuildCancelledContext(t *testing.T) {
	builder := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := builder.Build(ctx, Page{Title: "x"}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestBuilder_NormalizerInvariantsHold(t *testing.T) {
	builder := New()

	got, err := builder.Build(context.Background(), Page{
		Title: "Inv",
		Sections: []Section{
			{Heading: "A", Body: "first\n\n\n\nsecond"},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("blank run survived:\n%s", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if line != strings.TrimRight(line, " \t") {
			t.Fatalf("trailing whitespace on line %q", line)
		}
	}
}
