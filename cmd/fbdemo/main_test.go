package main

import (
	"bytes"
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/linht/fb/text"
)

func writeTestFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return path
}

// checkWelcome decodes the PNG at path and checks that both lines were drawn.
func checkWelcome(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 128 {
		t.Fatalf("bounds = %v, want 160x128", b)
	}

	var green, white int
	for y := 0; y < 128; y++ {
		for x := 0; x < 160; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			switch {
			case r == 0 && b == 0 && g > 0:
				green++
			case r > 0 && r == g && g == b:
				white++
			}
		}
	}
	if green == 0 || white == 0 {
		t.Errorf("green pixels = %d, white pixels = %d, want both > 0", green, white)
	}
}

func TestRunPNGWithFontFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "screen.png")
	var stderr bytes.Buffer
	if err := run([]string{"-font", writeTestFont(t), "-png", out}, &stderr); err != nil {
		t.Fatalf("run() = %v\n%s", err, stderr.String())
	}
	checkWelcome(t, out)
	if !strings.Contains(stderr.String(), "Screen saved to") {
		t.Errorf("stderr = %q, want save message", stderr.String())
	}
}

func TestRunConfigFonts(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "fb.yaml")
	if err := os.WriteFile(cfg, []byte("fonts:\n  regular: "+writeTestFont(t)+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "screen.png")

	var stderr bytes.Buffer
	if err := run([]string{"-config", cfg, "-png", out}, &stderr); err != nil {
		t.Fatalf("run() = %v\n%s", err, stderr.String())
	}
	checkWelcome(t, out)
	if strings.Contains(stderr.String(), "using Go Regular") {
		t.Error("configured font was not used")
	}
}

func TestRunConfigBadFont(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "fb.yaml")
	if err := os.WriteFile(cfg, []byte("fonts:\n  regular: "+filepath.Join(dir, "none.ttf")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	err := run([]string{"-config", cfg, "-png", filepath.Join(dir, "screen.png")}, &bytes.Buffer{})
	if !errors.Is(err, text.ErrFontLoad) {
		t.Fatalf("run() = %v, want ErrFontLoad", err)
	}
}

func TestRunDefaultFontFallback(t *testing.T) {
	// The package directory has no fonts/ resource directory.
	out := filepath.Join(t.TempDir(), "screen.png")
	var stderr bytes.Buffer
	if err := run([]string{"-png", out}, &stderr); err != nil {
		t.Fatalf("run() = %v\n%s", err, stderr.String())
	}
	checkWelcome(t, out)
	if !strings.Contains(stderr.String(), "using Go Regular") {
		t.Errorf("stderr = %q, want fallback message", stderr.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	if err := run([]string{"-nope"}, &bytes.Buffer{}); err == nil {
		t.Fatal("run(-nope) = nil, want error")
	}
	if err := run([]string{"-h"}, &bytes.Buffer{}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("run(-h) = %v, want flag.ErrHelp", err)
	}
}
