package sentiment

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var builtinLexicon []byte

const maxExclamations = 3

// lexiconFile is the on-disk form of a valence lexicon.
type lexiconFile struct {
	Name             string             `yaml:"name"`
	Scale            float64            `yaml:"scale"`
	Bias             float64            `yaml:"bias"`
	NegationWindow   int                `yaml:"negation_window"`
	NegationFactor   float64            `yaml:"negation_factor"`
	ExclamationBoost float64            `yaml:"exclamation_boost"`
	Negators         []string           `yaml:"negators"`
	Intensifiers     map[string]float64 `yaml:"intensifiers"`
	Words            map[string]float64 `yaml:"words"`
}

// LexiconModel is an offline binary sentiment model built from a
// pre-scored word list. Word valences are summed with negation,
// intensifier and exclamation handling, then squashed with a logistic
// into a probability of POSITIVE.
type LexiconModel struct {
	name         string
	scale        float64
	bias         float64
	window       int
	negFactor    float64
	bang         float64
	negators     map[string]bool
	intensifiers map[string]float64
	words        map[string]float64
}

var _ Model = (*LexiconModel)(nil)

// LexiconLoader returns a Loader for the lexicon at path, or for the
// built-in lexicon when path is empty.
func LexiconLoader(path string) Loader {
	return func(ctx context.Context) (Model, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data := builtinLexicon
		if path != "" {
			var err error
			data, err = os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read lexicon: %w", err)
			}
		}
		return ParseLexicon(data)
	}
}

// ParseLexicon builds a LexiconModel from YAML.
func ParseLexicon(data []byte) (*LexiconModel, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if len(f.Words) == 0 {
		return nil, fmt.Errorf("lexicon %q has no words", f.Name)
	}
	if f.Scale <= 0 {
		return nil, fmt.Errorf("lexicon %q: scale must be positive, got %v", f.Name, f.Scale)
	}
	if f.NegationWindow < 0 {
		return nil, fmt.Errorf("lexicon %q: negation_window must not be negative", f.Name)
	}
	if f.Name == "" {
		f.Name = "custom"
	}

	m := &LexiconModel{
		name:         f.Name,
		scale:        f.Scale,
		bias:         f.Bias,
		window:       f.NegationWindow,
		negFactor:    f.NegationFactor,
		bang:         f.ExclamationBoost,
		negators:     make(map[string]bool, len(f.Negators)),
		intensifiers: make(map[string]float64, len(f.Intensifiers)),
		words:        make(map[string]float64, len(f.Words)),
	}
	for _, n := range f.Negators {
		m.negators[strings.ToLower(n)] = true
	}
	for w, v := range f.Intensifiers {
		m.intensifiers[strings.ToLower(w)] = v
	}
	for w, v := range f.Words {
		m.words[strings.ToLower(w)] = v
	}
	return m, nil
}

// Name returns the lexicon name.
func (m *LexiconModel) Name() string {
	return "lexicon:" + m.name
}

// Predict scores text.
func (m *LexiconModel) Predict(ctx context.Context, text string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	sum := m.valence(tokenize(text))

	bangs := min(strings.Count(text, "!"), maxExclamations)
	sum *= 1 + m.bang*float64(bangs)

	p := 1 / (1 + math.Exp(-(m.scale*sum + m.bias)))
	if p >= 0.5 {
		return Prediction{Label: string(LabelPositive), Confidence: p}, nil
	}
	return Prediction{Label: string(LabelNegative), Confidence: 1 - p}, nil
}

// valence sums word scores. A negator flips the next window tokens; an
// intensifier scales the token right after it.
func (m *LexiconModel) valence(tokens []string) float64 {
	var sum float64
	negLeft := 0
	boost := 1.0

	for _, tok := range tokens {
		if m.isNegator(tok) {
			negLeft = m.window
			continue
		}
		if f, ok := m.intensifiers[tok]; ok {
			boost = f
			continue
		}
		if v, ok := m.words[tok]; ok {
			v *= boost
			if negLeft > 0 {
				v *= m.negFactor
			}
			sum += v
		}
		boost = 1
		if negLeft > 0 {
			negLeft--
		}
	}
	return sum
}

func (m *LexiconModel) isNegator(tok string) bool {
	return m.negators[tok] || strings.HasSuffix(tok, "n't")
}

// tokenize lower-cases text and splits it into words. Apostrophes stay
// inside words so contractions like "don't" survive.
func tokenize(text string) []string {
	text = strings.ReplaceAll(strings.ToLower(text), "’", "'")
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
