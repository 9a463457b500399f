package observe_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"minicrypt/internal/domain"
	"minicrypt/internal/observe"
)

func TestZap_LogsEventWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := observe.NewZap(zap.New(core), zapcore.InfoLevel)

	obs.Observe(domain.Event{Stage: domain.StageKeyGen, Name: "n", Value: int64(3233)})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "n" || e.Level != zapcore.InfoLevel {
		t.Fatalf("unexpected entry %q at %s", e.Message, e.Level)
	}
	fields := e.ContextMap()
	if fields["stage"] != domain.StageKeyGen {
		t.Fatalf("want stage %q, got %v", domain.StageKeyGen, fields["stage"])
	}
	if fields["value"] != int64(3233) {
		t.Fatalf("want value 3233, got %v", fields["value"])
	}
}

func TestZap_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := observe.NewZap(zap.New(core), zapcore.DebugLevel)

	obs.Observe(domain.Event{Stage: domain.StageExchange, Name: "base", Value: int64(5)})

	if logs.Len() != 0 {
		t.Fatalf("debug events must be filtered, got %d entries", logs.Len())
	}
}

func TestMulti_FansOutAndSkipsNil(t *testing.T) {
	a, b := &observe.Recorder{}, &observe.Recorder{}
	m := observe.Multi{a, nil, b}

	m.Observe(domain.Event{Name: "x"})
	m.Observe(domain.Event{Name: "y"})

	for i, r := range []*observe.Recorder{a, b} {
		got := r.Events()
		if len(got) != 2 || got[0].Name != "x" || got[1].Name != "y" {
			t.Fatalf("recorder %d: unexpected events %v", i, got)
		}
	}
}

func TestEmit_NilObserver(t *testing.T) {
	// Must not panic.
	domain.Emit(nil, domain.StageMessage, "noop", nil)
	domain.Emit(observe.Nop{}, domain.StageMessage, "noop", nil)
}
