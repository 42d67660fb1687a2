package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"FxPulse/internal/domain/models"
	"FxPulse/internal/domain/repository"
	"FxPulse/internal/service/cache"
	"FxPulse/pkg/config"
	applogger "FxPulse/pkg/logger"
)

const systemInstruction = `You are an Institutional Forex Strategist. Your goal is to find High-Probability Trade Setups based on VOLATILITY and CONFLUENCE using the provided dataset.
Identify the single most volatile pair (the "Market Driver") from its pip distance to its "Trend Base".
Then determine the Focus Currency (the non-USD component of the volatile pair) and its current strength (Strong or Weak).
IMPORTANT OUTPUT RULE: return ONLY a valid JSON object, no conversational text and no Markdown.
Output Format (JSON ONLY):
{
  "hotPair": {"pair": "USDJPY", "deviation": 250, "bias": "Long", "effectiveBias": "Long", "severity": "Extreme", "setupQuality": "PERFECT"},
  "focusCurrency": "JPY",
  "focusCurrencyStrength": "Weak",
  "aiReasoning": "USDJPY selected as the Market Driver due to the highest deviation from the Trend Base."
}`

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction content   `json:"systemInstruction"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// verdict is the JSON object the model is instructed to return.
type verdict struct {
	HotPair struct {
		Pair string `json:"pair"`
	} `json:"hotPair"`
	FocusCurrency         string `json:"focusCurrency"`
	FocusCurrencyStrength string `json:"focusCurrencyStrength"`
	Reasoning             string `json:"aiReasoning"`
}

// Gemini implements service.Corroborator against the generateContent REST API.
type Gemini struct {
	*HTTPServiceBase
	model  string
	apiKey string
	cache  cache.BytesCache
	ttl    time.Duration
	log    *applogger.Logger
}

// NewGemini builds the corroborator. c and m may be nil.
func NewGemini(cfg *config.Config, c cache.BytesCache, m repository.Metrics, l *applogger.Logger) *Gemini {
	if l == nil {
		l = applogger.NewNop()
	}
	cc := cfg.Corroboration
	base := NewHTTPServiceBase(strings.TrimSuffix(cc.BaseURL, "/"), cc.Timeout, cc.MaxAttempts, cc.InitialBackoff)
	base.onAttempt = func(err error) {
		if m == nil {
			return
		}
		if err == nil {
			m.RecordCorroboration("ok")
		} else {
			m.RecordCorroboration("error")
		}
	}
	return &Gemini{
		HTTPServiceBase: base,
		model:           cc.Model,
		apiKey:          cc.APIKey,
		cache:           c,
		ttl:             cc.CacheTTL,
		log:             l,
	}
}

// Corroborate sends the batch and the local hot pair to the model and returns
// its focus currency annotation. The credential is checked before any request.
func (g *Gemini) Corroborate(ctx context.Context, req models.CorroborationRequest) (*models.Corroboration, error) {
	if g.apiKey == "" {
		return nil, models.ErrCredentialMissing
	}
	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, err
	}

	key := cache.HashKey("corroboration", []byte(g.model), []byte(prompt))
	if cached := g.fromCache(ctx, key); cached != nil {
		g.log.Debug("corroboration cache hit", applogger.String("hot_pair", req.HotPair))
		return cached, nil
	}

	body := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	var resp generateResponse
	path := "/models/" + g.model + ":generateContent"
	if err := g.PostJSONWithRetry(ctx, path, map[string]string{"x-goog-api-key": g.apiKey}, body, &resp); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: corroboration: %v", models.ErrUpstream, err)
	}

	out, err := parseVerdict(resp.text())
	if err != nil {
		g.log.Warn("corroboration response rejected", applogger.Error(err))
		return nil, err
	}
	g.toCache(ctx, key, out)
	return out, nil
}

func buildPrompt(req models.CorroborationRequest) (string, error) {
	dataset, err := json.Marshal(req.Snapshots)
	if err != nil {
		return "", fmt.Errorf("marshal dataset: %w", err)
	}
	return fmt.Sprintf("MARKET DATASET: %s\nHOT PAIR (Volatility Winner): %s \nEffective Bias: %s, Quality: %s\nVerify this logic and return the JSON.",
		dataset, req.HotPair, req.EffectiveBias, req.SetupQuality), nil
}

func (r generateResponse) text() string {
	var sb strings.Builder
	for _, c := range r.Candidates {
		for _, p := range c.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}

// parseVerdict slices the outermost JSON object out of free text, repairs it
// and decodes it.
func parseVerdict(raw string) (*models.Corroboration, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in corroboration response", models.ErrParse)
	}
	repaired, err := jsonrepair.JSONRepair(raw[start : end+1])
	if err != nil {
		return nil, fmt.Errorf("%w: repair corroboration json: %v", models.ErrParse, err)
	}
	var v verdict
	if err := json.Unmarshal([]byte(repaired), &v); err != nil {
		return nil, fmt.Errorf("%w: decode corroboration json: %v", models.ErrParse, err)
	}
	return &models.Corroboration{
		HotPair:               strings.ToUpper(strings.TrimSpace(v.HotPair.Pair)),
		FocusCurrency:         strings.ToUpper(strings.TrimSpace(v.FocusCurrency)),
		FocusCurrencyStrength: models.Sentiment(strings.TrimSpace(v.FocusCurrencyStrength)),
		Reasoning:             v.Reasoning,
	}, nil
}

func (g *Gemini) fromCache(ctx context.Context, key string) *models.Corroboration {
	if g.cache == nil {
		return nil
	}
	b, ok, err := g.cache.GetBytes(ctx, key)
	if err != nil {
		g.log.Warn("corroboration cache read failed", applogger.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var out models.Corroboration
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return &out
}

func (g *Gemini) toCache(ctx context.Context, key string, v *models.Corroboration) {
	if g.cache == nil || g.ttl <= 0 {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := g.cache.SetBytes(ctx, key, b, g.ttl); err != nil {
		g.log.Warn("corroboration cache write failed", applogger.Error(err))
	}
}
