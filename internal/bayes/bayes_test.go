package bayes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedOnSpam(t *testing.T) *Classifier[string, string] {
	t.Helper()
	docs := [][]string{
		{"win", "money", "now"},
		{"free", "money", "win"},
		{"meeting", "at", "noon"},
		{"lunch", "at", "noon", "tomorrow"},
	}
	labels := []string{"spam", "spam", "ham", "ham"}

	c := New[string, string](1)
	require.NoError(t, c.Fit(docs, labels))
	return c
}

func TestNewDefaultsAlpha(t *testing.T) {
	assert.Equal(t, 1.0, New[string, string](0).Alpha())
	assert.Equal(t, 1.0, New[string, string](-2).Alpha())
	assert.Equal(t, 0.5, New[string, string](0.5).Alpha())
}

func TestFitAndPredict(t *testing.T) {
	c := trainedOnSpam(t)

	assert.Equal(t, []string{"spam", "ham"}, c.Labels())
	assert.Equal(t, 4, c.NumDocs())
	assert.Equal(t, 9, c.VocabSize())

	preds, err := c.Predict([][]string{
		{"free", "money"},
		{"meeting", "tomorrow"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"spam", "ham"}, preds)
}

func TestPosteriorsSumToOne(t *testing.T) {
	c := trainedOnSpam(t)

	docs := [][]string{
		{"win", "money"},
		{"noon"},
		{"win", "noon", "tomorrow", "free"},
		{}, // prior only
	}
	posteriors, err := c.Posteriors(docs)
	require.NoError(t, err)
	require.Len(t, posteriors, len(docs))

	for i, p := range posteriors {
		require.Len(t, p, 2)
		sum := 0.0
		for _, v := range p {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "doc %v", docs[i])
	}
}

func TestPosteriorsHandComputed(t *testing.T) {
	// Two classes, vocabulary {x, y, z}, alpha = 1.
	//
	//	P(x|a) = (2+1)/(3+3) = 1/2   P(x|b) = (0+1)/(2+3) = 1/5
	//
	// For the document [x] with equal priors the unnormalized
	// posteriors are 1/4 and 1/10, which normalize to 5/7 and 2/7.
	c := New[string, string](1)
	require.NoError(t, c.Fit(
		[][]string{{"x", "x", "y"}, {"y", "z"}},
		[]string{"a", "b"},
	))

	logs, err := c.ClassLogPosteriors([][]string{{"x"}})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.InDelta(t, math.Log(0.25), logs[0]["a"], 1e-12)
	assert.InDelta(t, math.Log(0.1), logs[0]["b"], 1e-12)

	p, err := c.Posteriors([][]string{{"x"}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0/7.0, p[0]["a"], 1e-12)
	assert.InDelta(t, 2.0/7.0, p[0]["b"], 1e-12)
}

func TestSmoothingAvoidsZeroVeto(t *testing.T) {
	// "u" never occurs in class b, but a document dominated by b's
	// tokens must still classify as b: smoothing keeps the unseen
	// token from zeroing the likelihood.
	c := New[string, string](1)
	require.NoError(t, c.Fit(
		[][]string{{"u"}, {"v", "v", "v"}},
		[]string{"a", "b"},
	))

	doc := []string{"u", "v", "v", "v"}
	preds, err := c.Predict([][]string{doc})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, preds)

	p, err := c.Posteriors([][]string{doc})
	require.NoError(t, err)
	assert.Greater(t, p[0]["b"], p[0]["a"])
	assert.Greater(t, p[0]["a"], 0.0, "smoothed posterior must stay positive")
}

func TestUnknownTokensCarryNoSignal(t *testing.T) {
	c := New[string, string](1)
	require.NoError(t, c.Fit(
		[][]string{{"x"}, {"x"}, {"y"}},
		[]string{"a", "a", "b"},
	))

	// Tokens outside the training vocabulary are skipped, so the
	// posterior equals the bare prior: (2/3, 1/3). An empty document
	// scores identically.
	p, err := c.Posteriors([][]string{{"never", "seen"}, nil})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, p[0]["a"], 1e-12)
	assert.InDelta(t, 1.0/3.0, p[0]["b"], 1e-12)
	assert.Equal(t, p[0], p[1])
}

func TestDisjointVocabularyScoresPerfectly(t *testing.T) {
	docs := [][]string{
		{"alpha", "beta", "alpha"},
		{"beta", "alpha"},
		{"gamma", "delta"},
		{"delta", "delta", "gamma"},
	}
	labels := []string{"first", "first", "second", "second"}

	c := New[string, string](1e-3)
	require.NoError(t, c.Fit(docs, labels))

	score, err := c.Score(docs, labels)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestPredictTieBreaksFirstLabel(t *testing.T) {
	// Symmetric training data: both classes have one document of one
	// token, so an empty document ties on the priors and the label
	// seen first must win.
	c := New[string, string](1)
	require.NoError(t, c.Fit(
		[][]string{{"p"}, {"q"}},
		[]string{"second", "first"},
	))

	preds, err := c.Predict([][]string{nil})
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, preds, "tie must break toward the first-encountered label")
}

func TestRefitDiscardsState(t *testing.T) {
	c := trainedOnSpam(t)
	require.NoError(t, c.Fit([][]string{{"only"}}, []string{"third"}))

	assert.Equal(t, []string{"third"}, c.Labels())
	assert.Equal(t, 1, c.NumDocs())
	assert.Equal(t, 1, c.VocabSize())

	preds, err := c.Predict([][]string{{"only"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"third"}, preds)
}

func TestIntTokensAndLabels(t *testing.T) {
	// Token ids (for example from a BPE encoder) work as well as
	// strings.
	c := New[int, int](1)
	require.NoError(t, c.Fit(
		[][]int{{100, 100, 200}, {300, 300, 400}},
		[]int{0, 1},
	))

	preds, err := c.Predict([][]int{{100, 200}, {400, 300}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, preds)
}

func TestErrors(t *testing.T) {
	c := New[string, string](1)

	_, err := c.Predict([][]string{{"x"}})
	assert.ErrorIs(t, err, ErrNotFitted)
	_, err = c.Posteriors([][]string{{"x"}})
	assert.ErrorIs(t, err, ErrNotFitted)
	_, err = c.ClassLogPosteriors([][]string{{"x"}})
	assert.ErrorIs(t, err, ErrNotFitted)
	_, err = c.Score([][]string{{"x"}}, []string{"a"})
	assert.ErrorIs(t, err, ErrNotFitted)

	assert.ErrorIs(t, c.Fit(nil, nil), ErrEmptyInput)
	assert.ErrorIs(t, c.Fit([][]string{{"x"}}, []string{"a", "b"}), ErrLengthMismatch)

	require.NoError(t, c.Fit([][]string{{"x"}}, []string{"a"}))
	_, err = c.Predict(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = c.Posteriors(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = c.Score(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, err = c.Score([][]string{{"x"}}, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
