package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/liderlab/assessment-system/internal/core/domain"
	"github.com/liderlab/assessment-system/internal/core/ports"
)

const (
	insightNotConfigured = "AI uvid nije generiran jer Google Gemini API ključ nije konfiguriran. " +
		"Postavite varijablu okoline GEMINI_API_KEY kako biste omogućili ovu značajku."
	insightEmpty          = "Nije moguće generirati uvid u ovom trenutku."
	insightFailureFormat  = "Generiranje AI uvida nije uspjelo: %v"
	defaultInsightTimeout = 30 * time.Second
)

// InsightService builds the narrative prompt for an assessment and dispatches
// it to an injected text generator. Every outcome is a displayable string.
type InsightService struct {
	generator ports.TextGenerator // nil when no API credential is configured
	cache     ports.InsightCache  // optional
	timeout   time.Duration
	log       zerolog.Logger
}

func NewInsightService(generator ports.TextGenerator, cache ports.InsightCache, timeout time.Duration, log zerolog.Logger) *InsightService {
	if timeout <= 0 {
		timeout = defaultInsightTimeout
	}
	return &InsightService{generator: generator, cache: cache, timeout: timeout, log: log}
}

func (s *InsightService) Generate(ctx context.Context, a domain.Assessment) string {
	if s.generator == nil {
		return insightNotConfigured
	}

	prompt := BuildPrompt(a)
	key := insightCacheKey(a.ID, prompt)

	if s.cache != nil {
		if cached, found, err := s.cache.Get(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("assessment_id", a.ID).Msg("insight cache read failed")
		} else if found {
			s.log.Debug().Str("assessment_id", a.ID).Msg("insight served from cache")
			return cached
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(callCtx, prompt)
	if err != nil {
		s.log.Warn().Err(err).Str("assessment_id", a.ID).Msg("insight generation failed")
		return fmt.Sprintf(insightFailureFormat, err)
	}
	if text == "" {
		return insightEmpty
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text); err != nil {
			s.log.Warn().Err(err).Str("assessment_id", a.ID).Msg("insight cache write failed")
		}
	}

	return text
}

// BuildPrompt renders the Croatian analysis prompt: identity fields, derived
// scores, category, and every dimension's score with its rubric label and
// behavioral description.
func BuildPrompt(a domain.Assessment) string {
	lines := []string{
		"Analiziraj profil vodstva u nastavku i izradi sažetak na hrvatskom jeziku.",
		"Uključi odjeljke: Sažetak, Ključne snage, Razvojna područja.",
		"Koristi profesionalan i konstruktivan ton.",
		"",
		fmt.Sprintf("Ime i prezime: %s", a.FullName),
		fmt.Sprintf("Pozicija: %s", a.Position),
		fmt.Sprintf("Razina menadžmenta: %s", a.ManagementLevel),
		fmt.Sprintf("Ocjena adekvatnosti: %v", a.Adequacy),
		fmt.Sprintf("Ocjena potencijala: %v", a.Potential),
		fmt.Sprintf("Kategorija: %s", a.Category),
		"",
		"Ocjene po dimenzijama:",
	}

	for _, code := range domain.AllDimensions {
		detail := domain.DimensionDetails[code]
		score := a.Dimensions[code]
		label, ok := detail.Scale[score]
		if !ok {
			label = fmt.Sprintf("%d", score)
		}
		behavior := detail.Description[score]
		lines = append(lines, fmt.Sprintf("- %s (%s): %d - %s. %s", detail.Name, detail.Group, score, label, behavior))
	}

	return strings.Join(lines, "\n")
}

// insightCacheKey binds the cached text to the record's content: a changed
// dimension or score changes the prompt and therefore the key.
func insightCacheKey(id, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("insight:%s:%x", id, sum[:8])
}
