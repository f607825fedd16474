package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/hausabot/sannu/internal/config"
	"github.com/rs/zerolog"
)

func testConfig() *config.Config {
	return &config.Config{
		CompletionTimeout: 30 * time.Second,
		MaxReplyLength:    4096,
		Keywords:          []string{"ina", "yaya", "lafiya", "na gode", "sannu", "assalamu", "salam", "kwanaki", "me"},
		Prompts:           config.DefaultPrompts,
	}
}

type fakeCompleter struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(ctx context.Context, userText string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestResolve_NoCompleter_EnglishEcho(t *testing.T) {
	r := NewResolver(testConfig(), nil, zerolog.Nop())

	text := "hello, what is the weather today?"
	got := r.Resolve(context.Background(), InboundMessage{Text: text, SenderName: "Abdul"})

	want := fmt.Sprintf(config.DefaultPrompts.EnglishReply, text)
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if !strings.Contains(got, text) {
		t.Fatalf("reply does not quote the original text: %q", got)
	}
}

func TestResolve_KeywordSelectsHausaReply(t *testing.T) {
	r := NewResolver(testConfig(), nil, zerolog.Nop())

	for _, kw := range testConfig().Keywords {
		text := "xyz " + strings.ToUpper(kw) + " xyz"
		got := r.Resolve(context.Background(), InboundMessage{Text: text, SenderName: "Amina"})

		want := fmt.Sprintf(config.DefaultPrompts.HausaReply, "Amina", text)
		if got != want {
			t.Fatalf("keyword %q: got %q, want %q", kw, got, want)
		}
	}
}

func TestResolve_EmptyText(t *testing.T) {
	r := NewResolver(testConfig(), nil, zerolog.Nop())

	got := r.Resolve(context.Background(), InboundMessage{Text: "", SenderName: "Abdul"})
	if got == "" {
		t.Fatal("expected a non-empty reply for empty input")
	}

	want := fmt.Sprintf(config.DefaultPrompts.EnglishReply, "")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolve_CompleterSuccess(t *testing.T) {
	fake := &fakeCompleter{reply: "hello"}
	r := NewResolver(testConfig(), fake, zerolog.Nop())

	got := r.Resolve(context.Background(), InboundMessage{Text: "hi there", SenderName: "Abdul"})
	if got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
	if fake.calls != 1 {
		t.Fatalf("expected exactly one completion call, got %d", fake.calls)
	}
}

func TestResolve_CompleterError_FallsBack(t *testing.T) {
	text := "hello, what is the weather today?"
	msg := InboundMessage{Text: text, SenderName: "Abdul"}

	fake := &fakeCompleter{err: errors.New("upstream exploded")}
	withCompleter := NewResolver(testConfig(), fake, zerolog.Nop())
	withoutCompleter := NewResolver(testConfig(), nil, zerolog.Nop())

	got := withCompleter.Resolve(context.Background(), msg)
	want := withoutCompleter.Resolve(context.Background(), msg)
	if got != want {
		t.Fatalf("degraded reply %q differs from no-completer reply %q", got, want)
	}
	if fake.calls != 1 {
		t.Fatalf("expected exactly one completion attempt, got %d", fake.calls)
	}
}

func TestResolve_EmptyCompletion_FallsBack(t *testing.T) {
	fake := &fakeCompleter{reply: ""}
	r := NewResolver(testConfig(), fake, zerolog.Nop())

	text := "hello world"
	got := r.Resolve(context.Background(), InboundMessage{Text: text, SenderName: "Abdul"})

	want := fmt.Sprintf(config.DefaultPrompts.EnglishReply, text)
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolve_TruncatesLongCompletion(t *testing.T) {
	fake := &fakeCompleter{reply: strings.Repeat("a", 5000)}
	r := NewResolver(testConfig(), fake, zerolog.Nop())

	got := r.Resolve(context.Background(), InboundMessage{Text: "tell a long story", SenderName: "Abdul"})

	if n := utf8.RuneCountInString(got); n > 4096 {
		t.Fatalf("reply has %d chars, want <= 4096", n)
	}
	if !strings.HasSuffix(got, "[truncated]") {
		t.Fatalf("reply does not end with the truncation marker: %q", got[len(got)-32:])
	}
}

func TestResolve_ShortCompletionNotTruncated(t *testing.T) {
	fake := &fakeCompleter{reply: strings.Repeat("b", 4096)}
	r := NewResolver(testConfig(), fake, zerolog.Nop())

	got := r.Resolve(context.Background(), InboundMessage{Text: "hi", SenderName: "Abdul"})
	if got != fake.reply {
		t.Fatal("reply at the limit must be returned unmodified")
	}
}

func TestResolve_Idempotent(t *testing.T) {
	fake := &fakeCompleter{reply: "deterministic answer"}
	r := NewResolver(testConfig(), fake, zerolog.Nop())

	msg := InboundMessage{Text: "hi there", SenderName: "Abdul"}
	first := r.Resolve(context.Background(), msg)
	second := r.Resolve(context.Background(), msg)
	if first != second {
		t.Fatalf("got %q then %q for identical input", first, second)
	}
}

func TestCompletionEnabled(t *testing.T) {
	if NewResolver(testConfig(), nil, zerolog.Nop()).CompletionEnabled() {
		t.Fatal("expected completion disabled without a completer")
	}
	if !NewResolver(testConfig(), &fakeCompleter{}, zerolog.Nop()).CompletionEnabled() {
		t.Fatal("expected completion enabled with a completer")
	}
}
