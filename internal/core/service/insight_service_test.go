package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

type stubGenerator struct {
	text       string
	err        error
	lastPrompt string
	calls      int
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	return g.text, g.err
}

type stubInsightCache struct {
	entries map[string]string
	getErr  error
}

func (c *stubInsightCache) Get(_ context.Context, key string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *stubInsightCache) Set(_ context.Context, key, value string) error {
	if c.entries == nil {
		c.entries = make(map[string]string)
	}
	c.entries[key] = value
	return nil
}

func sampleAssessment() domain.Assessment {
	return domain.Assessment{
		ID:              "a1",
		AssessedBy:      "user@example.com",
		FullName:        "Ana Anić",
		Position:        "Voditeljica prodaje",
		ManagementLevel: "B-2",
		Dimensions:      fullDimensions(4),
		Adequacy:        4.0,
		Potential:       4.0,
		Category:        "Primjer",
	}
}

func TestInsightService_NoGeneratorConfigured(t *testing.T) {
	svc := NewInsightService(nil, nil, 0, zerolog.Nop())

	got := svc.Generate(context.Background(), sampleAssessment())
	if !strings.Contains(got, "GEMINI_API_KEY") {
		t.Fatalf("expected the not-configured message, got %q", got)
	}
}

func TestInsightService_GeneratorSuccess(t *testing.T) {
	gen := &stubGenerator{text: "Sažetak: izvrstan vođa."}
	svc := NewInsightService(gen, nil, 0, zerolog.Nop())

	got := svc.Generate(context.Background(), sampleAssessment())
	if got != "Sažetak: izvrstan vođa." {
		t.Fatalf("expected generator output, got %q", got)
	}

	for _, want := range []string{"Ana Anić", "Voditeljica prodaje", "B-2", "Primjer"} {
		if !strings.Contains(gen.lastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, gen.lastPrompt)
		}
	}
	for _, code := range domain.AllDimensions {
		if !strings.Contains(gen.lastPrompt, domain.DimensionDetails[code].Name) {
			t.Fatalf("prompt missing dimension %q", code)
		}
	}
}

func TestInsightService_GeneratorFailureBecomesText(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := NewInsightService(gen, nil, 0, zerolog.Nop())

	got := svc.Generate(context.Background(), sampleAssessment())
	if !strings.Contains(got, "nije uspjelo") || !strings.Contains(got, "quota exceeded") {
		t.Fatalf("expected failure message embedding the error, got %q", got)
	}
}

func TestInsightService_EmptyGeneratorOutput(t *testing.T) {
	svc := NewInsightService(&stubGenerator{text: ""}, nil, 0, zerolog.Nop())

	got := svc.Generate(context.Background(), sampleAssessment())
	if got != insightEmpty {
		t.Fatalf("expected %q, got %q", insightEmpty, got)
	}
}

func TestInsightService_CacheHitSkipsGenerator(t *testing.T) {
	a := sampleAssessment()
	key := insightCacheKey(a.ID, BuildPrompt(a))

	gen := &stubGenerator{text: "svježe"}
	cache := &stubInsightCache{entries: map[string]string{key: "iz predmemorije"}}
	svc := NewInsightService(gen, cache, 0, zerolog.Nop())

	got := svc.Generate(context.Background(), a)
	if got != "iz predmemorije" {
		t.Fatalf("expected cached value, got %q", got)
	}
	if gen.calls != 0 {
		t.Fatalf("generator should not be called on a cache hit, got %d calls", gen.calls)
	}
}

func TestInsightService_CacheMissStoresResult(t *testing.T) {
	a := sampleAssessment()
	gen := &stubGenerator{text: "novi uvid"}
	cache := &stubInsightCache{}
	svc := NewInsightService(gen, cache, 0, zerolog.Nop())

	got := svc.Generate(context.Background(), a)
	if got != "novi uvid" {
		t.Fatalf("expected generator output, got %q", got)
	}

	key := insightCacheKey(a.ID, BuildPrompt(a))
	if cache.entries[key] != "novi uvid" {
		t.Fatalf("expected result cached under %q, got %v", key, cache.entries)
	}
}

func TestInsightService_CacheErrorFallsThrough(t *testing.T) {
	gen := &stubGenerator{text: "uvid"}
	cache := &stubInsightCache{getErr: errors.New("connection refused")}
	svc := NewInsightService(gen, cache, 0, zerolog.Nop())

	got := svc.Generate(context.Background(), sampleAssessment())
	if got != "uvid" {
		t.Fatalf("cache errors must not block generation, got %q", got)
	}
}

func TestInsightCacheKeyChangesWithContent(t *testing.T) {
	a := sampleAssessment()
	key1 := insightCacheKey(a.ID, BuildPrompt(a))

	a.Dimensions["A"] = 1
	key2 := insightCacheKey(a.ID, BuildPrompt(a))

	if key1 == key2 {
		t.Fatal("changing a dimension must change the cache key")
	}
}
