package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mpopescu/gazex/internal/model"
)

// Provider defines the interface for LLM extraction providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Extract recovers a structured company record from a notice text
	Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ExtractRequest contains the input for LLM extraction
type ExtractRequest struct {
	// Text is the raw notice text to extract from
	Text string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExtractResponse contains the LLM's extraction output
type ExtractResponse struct {
	// Record is the decoded company record
	Record *model.CompanyRecord

	// RawJSON is the verbatim model output after fence stripping
	RawJSON string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   60,
		MaxTokens: 2000,
	}
}

const systemPrompt = "You extract structured company data from Romanian " +
	"official-gazette notices. You never invent values and you answer with a " +
	"single JSON object only."

// BuildPrompt constructs the default extraction prompt. The contract is
// strict: fields absent from the text stay empty, diacritics are kept
// as written, and identifiers follow the registry formats.
func BuildPrompt(text string) string {
	return fmt.Sprintf(`Extract company registration data from the Romanian official-gazette notice below.

CRITICAL RULES:
1. Output a SINGLE JSON object and nothing else. No prose, no markdown fences.
2. NEVER invent or guess a value. A field not present in the text stays "".
3. Preserve Romanian diacritics exactly as written.
4. "cui" is the fiscal code with the RO prefix, e.g. "RO12345678".
5. "registrationNumber" keeps the registry format, e.g. "J12/345/2020" or "F12/10/2021".
6. "caen" is the 4-digit main activity code, not its description.
7. Dates use the YYYY-MM-DD format.

JSON shape:
{
  "name": "",
  "legalForm": "",
  "mainInfo": {
    "cui": "",
    "registrationNumber": "",
    "euid": "",
    "caen": "",
    "capital": "",
    "dateOfCreation": "",
    "activityFieldDescription": "",
    "addresses": [{"fullAddress": "", "county": "", "city": ""}],
    "ownership": [{"administrators": [{"name": ""}], "associates": [{"name": ""}]}]
  }
}

Notice text:
%s`, text)
}

// decodeRecord parses model output into a company record. Markdown
// fences are tolerated and stripped; anything that does not decode as a
// single JSON object carrying at least a name or a cui is a hard
// failure, so the caller keeps its heuristic result.
func decodeRecord(raw string) (*model.CompanyRecord, error) {
	raw = stripFences(raw)

	var rec model.CompanyRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode extraction JSON: %w", err)
	}
	if rec.Name == "" && rec.MainInfo.CUI == "" {
		return nil, fmt.Errorf("extraction JSON carries neither name nor cui")
	}
	return &rec, nil
}

// stripFences removes a surrounding markdown code fence if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
