package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func withLevel(t *testing.T, l slog.Level) {
	old := level.Level()
	level.Set(l)
	t.Cleanup(func() {
		level.Set(old)
	})
}

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		withLevel(t, slog.LevelWarn)
		logger.Info("hidden")
		logger.Warn("shown", "n", 1)
		if strings.Contains(buf.String(), "hidden") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "msg=shown n=1") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestWithAttrsKeepsSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		withLevel(t, slog.LevelInfo)
		ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
		logger.With("input", "a.tk").InfoContext(ctx, "tokenized")
		if !strings.Contains(buf.String(), "input=a.tk logs.span=foo") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %s", got)
	}
}

func TestWrapSpan(t *testing.T) {
	err := errors.New("foo")
	if WrapSpan(context.Background(), err) != err {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("bar"))
	wrapped := WrapSpan(ctx, err)
	if !errors.Is(wrapped, err) {
		t.Fatalf("got %v", wrapped)
	}
	if wrapped.Error() != "foo (span bar)" {
		t.Fatalf("got %v", wrapped)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}
