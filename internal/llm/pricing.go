package llm

// Price is USD per million tokens.
type Price struct {
	In  float64
	Out float64
}

// Cost of one request in USD.
func (p Price) Cost(t Tokens) float64 {
	return (float64(t.In)*p.In + float64(t.Out)*p.Out) / 1_000_000
}

// PriceOf looks up the list price of a served model ID.
func PriceOf(model string) (Price, bool) {
	p, ok := prices[model]
	return p, ok
}

// prices covers the small models worth pointing a classifier at.
var prices = map[string]Price{
	"claude-3-5-haiku-latest":   {0.8, 4},
	"claude-3-5-haiku-20241022": {0.8, 4},
	"claude-haiku-4-5":          {1, 5},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},

	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-5-nano":   {0.05, 0.4},
	"gpt-5-mini":   {0.25, 2},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},

	"google/gemini-2.0-flash-001": {0.1, 0.4},
}
