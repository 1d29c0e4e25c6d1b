package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunContact(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"contact", "-to", "me@example.com", "-name", "Ann", "-email", "a@b.com", "-message", "Hi"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v (stderr: %s)", err, stderr.String())
	}
	want := "mailto:me@example.com?subject=New%20message%20from%20portfolio&body=Name%3A%20Ann%0AEmail%3A%20a%40b.com%0A%0AHi\n"
	if got := stdout.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunContactNeedsRecipient(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"contact", "-name", "Ann"}, &stdout, &stderr); err == nil {
		t.Error("expected error without recipient")
	}
}

func TestRunInitConfigThenContact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neongrid.yaml")
	var stdout, stderr bytes.Buffer
	if err := run([]string{"init-config", path}, &stdout, &stderr); err != nil {
		t.Fatalf("init-config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "smoothing: 0.05") {
		t.Errorf("config missing smoothing:\n%s", data)
	}

	data = append(data, []byte("contact:\n  recipient: cfg@example.com\n")...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	stdout.Reset()
	if err := run([]string{"contact", "-config", path}, &stdout, &stderr); err != nil {
		t.Fatalf("contact: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "mailto:cfg@example.com?") {
		t.Errorf("output = %q", stdout.String())
	}
}
