package utils

import (
	"strings"
	"testing"
)

func TestProcessHTMLContentAddsClasses(t *testing.T) {
	out := ProcessHTMLContent("<h1>About</h1><p>Hello</p>")
	if !strings.Contains(out, `<h1 class="`) {
		t.Fatalf("expected h1 to gain a class, got %q", out)
	}
	if !strings.Contains(out, `<p class="`) {
		t.Fatalf("expected p to gain a class, got %q", out)
	}
}

func TestProcessHTMLContentKeepsExistingClasses(t *testing.T) {
	in := `<p class="custom">Hello</p>`
	if out := ProcessHTMLContent(in); out != in {
		t.Fatalf("existing class was overwritten: %q", out)
	}
}

func TestProcessHTMLContentLeavesPlainTextAlone(t *testing.T) {
	in := "just some text"
	if out := ProcessHTMLContent(in); out != in {
		t.Fatalf("plain text was modified: %q", out)
	}
}
