package signet

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRecordingLogger(t *testing.T) {
	l := NewRecordingLogger()
	l.Info("hello", "k", 1)
	l.With("scope", "x").Error("boom")

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != LogInfo || entries[0].Msg != "hello" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
	if entries[1].Level != LogError || entries[1].Args[0] != "scope" {
		t.Errorf("unexpected second entry %+v", entries[1])
	}
	if entries[1].Level.String() != "ERROR" {
		t.Errorf("unexpected level name %q", entries[1].Level)
	}
	l.Reset()
	if len(l.Entries()) != 0 {
		t.Error("expected entries to be cleared")
	}
}

func TestRegistryLogsLifecycle(t *testing.T) {
	ResetGlobalRegistry()
	l := NewRecordingLogger()
	r := NewRegistry(WithLogger(l))

	e := r.CreateEntity()
	AddComponent(r, e, compA{})
	r.KillEntity(e)
	r.Update()

	var msgs []string
	for _, entry := range l.Entries() {
		msgs = append(msgs, entry.Msg)
	}
	joined := strings.Join(msgs, "|")
	for _, want := range []string{"entity created", "component pool created", "entity killed", "registry reconciled"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in log, got %q", want, joined)
		}
	}
}

func TestRegistryLogsContractViolation(t *testing.T) {
	ResetGlobalRegistry()
	l := NewRecordingLogger()
	r := NewRegistry(WithLogger(l))
	e := r.CreateEntity()

	func() {
		defer func() { _ = recover() }()
		GetComponent[compB](r, e)
	}()

	entries := l.Entries()
	last := entries[len(entries)-1]
	if last.Level != LogError || last.Msg != "get missing component" {
		t.Errorf("expected error entry for missing component, got %+v", last)
	}
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	l.With("registry", "main").Info("entity created", "entity", 3)
	out := buf.String()
	if !strings.Contains(out, "registry=main") || !strings.Contains(out, "entity=3") {
		t.Errorf("unexpected slog output %q", out)
	}
	if NewSlogLogger(nil) == nil {
		t.Error("nil slog logger should fall back to default")
	}
}

func TestRegistryLogsCarryName(t *testing.T) {
	ResetGlobalRegistry()
	l := NewRecordingLogger()
	r := NewRegistry(WithLogger(l), WithName("level-1"))
	r.CreateEntity()

	entries := l.Entries()
	if len(entries) == 0 {
		t.Fatal("expected a log entry")
	}
	args := entries[0].Args
	if len(args) < 2 || args[0] != "registry" || args[1] != "level-1" {
		t.Errorf("expected registry=level-1 prefix, got %v", args)
	}

	l.Reset()
	NewRegistry(WithLogger(l)).CreateEntity()
	if got := l.Entries()[0].Args[1]; got != defaultRegistryName {
		t.Errorf("expected default registry name, got %v", got)
	}
}
