// Package advisor implements the AI generation pipelines behind each API
// endpoint: build a prompt from the career catalog and caller inputs, send it
// to the completion provider, sanitize and parse the response, and substitute
// a deterministic fallback when any of that fails.
package advisor

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Imran-Rifat/Solo-leveling-backend/internal/catalog"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/llm"
	"github.com/Imran-Rifat/Solo-leveling-backend/internal/schemas"
)

const (
	// completionTimeout bounds each provider call; the provider is a black
	// box and may hang.
	completionTimeout = 60 * time.Second

	// maxCVChars caps how much résumé text is interpolated into a prompt.
	maxCVChars = 4000
)

// Advisor runs the generation pipelines. It is safe for concurrent use:
// the catalog is read-only and the client is stateless per call.
type Advisor struct {
	client  llm.Client
	catalog *catalog.Catalog
}

// New creates an Advisor around a completion client and the career catalog.
func New(client llm.Client, cat *catalog.Catalog) *Advisor {
	return &Advisor{client: client, catalog: cat}
}

// generateJSON runs the shared pipeline tail: complete, sanitize, parse into
// out, and validate the raw JSON against the named schema. Every returned
// error is recoverable and should be answered with a fallback.
func (a *Advisor) generateJSON(ctx context.Context, req llm.Request, schemaName string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	raw, err := a.client.Complete(ctx, req)
	if err != nil {
		return &CompletionError{Message: "provider call failed", Cause: err}
	}

	cleaned := llm.Sanitize(raw)

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &ParseError{Message: "response is not valid JSON", Cause: err}
	}

	if err := schemas.Validate(schemaName, []byte(cleaned)); err != nil {
		return &SchemaError{Message: "response shape mismatch", Cause: err}
	}

	return nil
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	// Back up to a rune boundary so the cut never splits a character.
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func joinComma(items []string) string {
	return strings.Join(items, ", ")
}
