// Package llm holds the Gemini client, model tier configuration, and the
// requirement extractor built on top of them.
package llm

// ModelTier selects a model by the complexity of the task, not by name, so
// callers stay stable when the underlying model list rotates.
type ModelTier string

const (
	// TierLite runs cheap calls: soft scoring, classification.
	TierLite ModelTier = "lite"
	// TierStandard runs structured extraction.
	TierStandard ModelTier = "standard"
	// TierAdvanced is reserved for multi-step reasoning.
	TierAdvanced ModelTier = "advanced"
)

// Config maps tiers to concrete Gemini model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the stock Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves a tier to a model name, falling back tier by tier so a
// partially configured map still yields something callable.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	for _, fallback := range []ModelTier{TierStandard, TierLite} {
		if model, ok := c.Models[fallback]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models))
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Models: models}
}
