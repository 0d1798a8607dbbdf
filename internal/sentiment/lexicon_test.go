package sentiment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinModel(t *testing.T) *LexiconModel {
	t.Helper()
	m, err := ParseLexicon(builtinLexicon)
	require.NoError(t, err)
	return m
}

func TestLexicon_Labels(t *testing.T) {
	m := builtinModel(t)

	tests := []struct {
		text string
		want Label
	}{
		{"Oh great, another meeting...", LabelPositive},
		{"I hate Mondays", LabelNegative},
		{"What a wonderful, sunny day", LabelPositive},
		{"This is not good", LabelNegative},
		{"I don't like it", LabelNegative},
		{"Never been so bored and tired", LabelNegative},
		{"Not bad at all", LabelPositive},
		{"The sky", LabelPositive}, // no cues: the bias breaks the tie
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			pred, err := m.Predict(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), pred.Label)
			assert.GreaterOrEqual(t, pred.Confidence, 0.5)
			assert.LessOrEqual(t, pred.Confidence, 1.0)
		})
	}
}

func TestLexicon_IntensifiersAndExclamations(t *testing.T) {
	m := builtinModel(t)
	ctx := context.Background()

	plain, err := m.Predict(ctx, "good")
	require.NoError(t, err)
	very, err := m.Predict(ctx, "very good")
	require.NoError(t, err)
	shouted, err := m.Predict(ctx, "good!!!")
	require.NoError(t, err)
	slightly, err := m.Predict(ctx, "slightly good")
	require.NoError(t, err)

	assert.Greater(t, very.Confidence, plain.Confidence)
	assert.Greater(t, shouted.Confidence, plain.Confidence)
	assert.Less(t, slightly.Confidence, plain.Confidence)

	// Exclamations beyond the cap change nothing.
	capped, err := m.Predict(ctx, "good!!!!!!")
	require.NoError(t, err)
	assert.InDelta(t, shouted.Confidence, capped.Confidence, 1e-12)
}

func TestLexicon_NegationWindow(t *testing.T) {
	m := builtinModel(t)
	ctx := context.Background()

	// "great" sits outside the three-token window after "not".
	pred, err := m.Predict(ctx, "not one two three great")
	require.NoError(t, err)
	assert.Equal(t, string(LabelPositive), pred.Label)

	pred, err = m.Predict(ctx, "not one two great")
	require.NoError(t, err)
	assert.Equal(t, string(LabelNegative), pred.Label)
}

func TestLexicon_CancelledContext(t *testing.T) {
	m := builtinModel(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Predict(ctx, "good")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLexiconLoader(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		m, err := LexiconLoader("")(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "lexicon:valence-en-v1", m.Name())
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tiny.yaml")
		data := []byte("name: tiny\nscale: 1\nwords:\n  meh: -1\n  yay: 2\n")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		m, err := LexiconLoader(path)(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "lexicon:tiny", m.Name())

		pred, err := m.Predict(context.Background(), "meh")
		require.NoError(t, err)
		assert.Equal(t, "NEGATIVE", pred.Label)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LexiconLoader(filepath.Join(t.TempDir(), "nope.yaml"))(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing file through Load", func(t *testing.T) {
		svc, err := Load(context.Background(), LexiconLoader(filepath.Join(t.TempDir(), "nope.yaml")), nil)
		var loadErr *ModelLoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, LabelError, svc.Classify(context.Background(), "great").Label)
	})
}

func TestParseLexicon_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "words: [unclosed"},
		{"no words", "name: empty\nscale: 1\n"},
		{"zero scale", "name: flat\nscale: 0\nwords:\n  good: 1\n"},
		{"negative window", "name: odd\nscale: 1\nnegation_window: -1\nwords:\n  good: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLexicon([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Oh GREAT, another meeting... I don’t 'love' it!! 9am")
	want := []string{"oh", "great", "another", "meeting", "i", "don't", "love", "it", "9am"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokenize() mismatch (-want +got):\n%s", diff)
	}
}
