package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestHeadlessBar(t *testing.T) {
	theme := NewTheme(true)
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	var buf bytes.Buffer
	p := newProgressWithWriter(theme, hm, &buf)

	bar := p.Start("rendering shopapp", 3)
	bar.Increment(1)
	bar.SetTitle("shopapp/routes.py")
	bar.Increment(1)
	bar.Done()

	out := buf.String()
	if !strings.Contains(out, "[1/3] rendering shopapp") {
		t.Errorf("missing first tick:\n%s", out)
	}
	if !strings.Contains(out, "[2/3] shopapp/routes.py") {
		t.Errorf("missing retitled tick:\n%s", out)
	}
	if !strings.Contains(out, "[3/3]") {
		t.Errorf("missing completion line:\n%s", out)
	}
}

func TestHeadlessBarClampsOverflow(t *testing.T) {
	theme := NewTheme(true)
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	var buf bytes.Buffer
	bar := newProgressWithWriter(theme, hm, &buf).Start("x", 2)
	bar.Increment(5)

	if !strings.Contains(buf.String(), "[2/2]") {
		t.Errorf("overflow not clamped:\n%s", buf.String())
	}
}

func TestForceHeadless(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("ForceHeadless(true) ignored")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("ForceHeadless(false) ignored")
	}
}

func TestThemeNoColor(t *testing.T) {
	theme := NewTheme(true)
	if got := theme.Success.Render("ok"); got != "ok" {
		t.Errorf("NoColor theme styled output: %q", got)
	}
}
