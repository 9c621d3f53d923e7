// Package translate provides description translation for the portal.
//
// Two implementations of the Translator contract live here:
//   - Google: the real Cloud Translation API client, used when an API key
//     is configured.
//   - Mock: a small dictionary translator so the portal stays usable
//     offline and in tests.
//
// Graceful degradation: NewFromEnv returns the mock when no API key is set.
// Callers make exactly one attempt per user-initiated invocation; on error
// the view layer shows a fixed failure message and keeps the prior content.
package translate

import (
	"context"
	"fmt"
	"log"
	"strings"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// Translator maps (text, target locale tag) to translated text.
type Translator interface {
	Translate(ctx context.Context, text, targetTag string) (string, error)
}

// Google translates through the Cloud Translation API.
type Google struct {
	client *gtranslate.Client
}

// NewGoogle creates a Cloud Translation backed translator.
func NewGoogle(ctx context.Context, apiKey string) (*Google, error) {
	client, err := gtranslate.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create translation client: %w", err)
	}
	return &Google{client: client}, nil
}

// Translate performs a single translation call. No retry.
func (g *Google) Translate(ctx context.Context, text, targetTag string) (string, error) {
	target, err := language.Parse(targetTag)
	if err != nil {
		return "", fmt.Errorf("unknown target locale %q: %w", targetTag, err)
	}
	resps, err := g.client.Translate(ctx, []string{text}, target, nil)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	if len(resps) == 0 {
		return "", fmt.Errorf("empty translation response")
	}
	return resps[0].Text, nil
}

// Close releases the underlying API client.
func (g *Google) Close() error {
	return g.client.Close()
}

// Mock is the offline dictionary translator.
//
// It prefixes the text with a per-language marker and swaps a handful of
// common complaint keywords, which is enough to exercise the translate flow
// end to end without network access.
type Mock struct{}

// mockPrefixes marks mock output per target language.
var mockPrefixes = map[string]string{
	"ta": "இது ஒரு மாதிரி மொழிபெயர்ப்பு: ",
	"hi": "यह एक नमूना अनुवाद है: ",
	"te": "ఇది ఒక నమూనా అనువాదం: ",
	"ml": "ഇതൊരു മാതൃകാ വിവർത്തനമാണ്: ",
}

// mockKeywords maps common complaint words to their translations.
var mockKeywords = map[string]map[string]string{
	"pothole": {"ta": "குழி", "hi": "गड्ढा", "te": "గుంత", "ml": "കുഴി"},
	"road":    {"ta": "சாலை", "hi": "सड़क", "te": "రోడ్డు", "ml": "റോഡ്"},
	"water":   {"ta": "தண்ணீர்", "hi": "पानी", "te": "నీరు", "ml": "വെള്ളം"},
	"power":   {"ta": "மின்சாரம்", "hi": "बिजली", "te": "విద్యుత్", "ml": "വൈദ്യുതി"},
}

// Translate swaps known keywords and prepends the language marker.
func (Mock) Translate(_ context.Context, text, targetTag string) (string, error) {
	prefix, ok := mockPrefixes[targetTag]
	if !ok {
		prefix = "Translated: "
	}

	translated := text
	lowered := strings.ToLower(text)
	for word, perLang := range mockKeywords {
		if !strings.Contains(lowered, word) {
			continue
		}
		if repl, ok := perLang[targetTag]; ok {
			translated = strings.ReplaceAll(translated, word, repl)
			capitalized := strings.ToUpper(word[:1]) + word[1:]
			translated = strings.ReplaceAll(translated, capitalized, repl)
		}
	}

	return prefix + translated, nil
}

// NewFromEnv picks the translator for the configured API key.
//
// Empty key falls back to the mock so translation keeps working offline.
func NewFromEnv(ctx context.Context, apiKey string) (Translator, error) {
	if apiKey == "" {
		log.Println("⚠️  TRANSLATE_API_KEY not set. Using offline mock translator.")
		return Mock{}, nil
	}
	g, err := NewGoogle(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	log.Println("✓ Cloud Translation configured successfully")
	return g, nil
}
