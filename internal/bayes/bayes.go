// Package bayes implements a multinomial naive Bayes classifier over
// discrete token sequences.
//
// Documents are token slices and may use any comparable token type;
// labels may be any comparable type as well. Training counts token
// occurrences per class, and classification combines the log prior of
// each class with the Laplace-smoothed log likelihood of every
// document token:
//
//	P(token | class) = (count(token, class) + alpha) /
//	                   (totalTokens(class) + alpha*|vocabulary|)
//
// Smoothing gives in-vocabulary tokens that a class has never seen a
// small nonzero probability instead of vetoing the class outright.
// Tokens absent from the entire training vocabulary carry no signal
// and are skipped. All scoring happens in log space; probabilities are
// only materialized by Posteriors, which normalizes with log-sum-exp.
package bayes

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Common errors returned by classifier operations.
var (
	// ErrNotFitted indicates a classification call before Fit.
	ErrNotFitted = errors.New("bayes: classifier has not been fitted")

	// ErrEmptyInput indicates an empty training or scoring set.
	ErrEmptyInput = errors.New("bayes: empty input")

	// ErrLengthMismatch indicates that documents and labels differ in
	// count.
	ErrLengthMismatch = errors.New("bayes: document and label counts do not match")
)

// Classifier is a multinomial naive Bayes classifier with Laplace
// smoothing. T is the token type and L the label type.
//
// The zero value is not usable; construct with New. A Classifier is
// not safe for concurrent use.
type Classifier[T comparable, L comparable] struct {
	alpha float64

	// Per-class state, indexed by the order in which labels were first
	// encountered during Fit. That order also breaks Predict ties, so
	// results are deterministic for a fixed training set.
	labels      []L
	labelIndex  map[L]int
	docCounts   []int
	tokenCounts []map[T]int
	totalToks   []int

	vocab   map[T]struct{}
	numDocs int
	fitted  bool
}

// New returns an untrained classifier. alpha is the Laplace smoothing
// strength; values <= 0 select the standard add-one smoothing
// (alpha = 1).
func New[T comparable, L comparable](alpha float64) *Classifier[T, L] {
	if alpha <= 0 {
		alpha = 1
	}
	return &Classifier[T, L]{
		alpha:      alpha,
		labelIndex: make(map[L]int),
		vocab:      make(map[T]struct{}),
	}
}

// Alpha returns the smoothing strength in effect.
func (c *Classifier[T, L]) Alpha() float64 { return c.alpha }

// Labels returns the known class labels in first-encountered order.
// Before Fit it returns nil.
func (c *Classifier[T, L]) Labels() []L {
	return append([]L(nil), c.labels...)
}

// VocabSize returns the number of distinct tokens seen during Fit.
func (c *Classifier[T, L]) VocabSize() int { return len(c.vocab) }

// NumDocs returns the number of training documents.
func (c *Classifier[T, L]) NumDocs() int { return c.numDocs }

// Fit trains the classifier on labelled documents, discarding any
// previously learned state. Empty documents are allowed and contribute
// to the class priors only.
func (c *Classifier[T, L]) Fit(docs [][]T, labels []L) error {
	if len(docs) == 0 {
		return ErrEmptyInput
	}
	if len(docs) != len(labels) {
		return ErrLengthMismatch
	}

	c.labels = nil
	c.labelIndex = make(map[L]int)
	c.docCounts = nil
	c.tokenCounts = nil
	c.totalToks = nil
	c.vocab = make(map[T]struct{})

	for i, doc := range docs {
		label := labels[i]
		idx, ok := c.labelIndex[label]
		if !ok {
			idx = len(c.labels)
			c.labels = append(c.labels, label)
			c.labelIndex[label] = idx
			c.docCounts = append(c.docCounts, 0)
			c.tokenCounts = append(c.tokenCounts, make(map[T]int))
			c.totalToks = append(c.totalToks, 0)
		}
		c.docCounts[idx]++
		for _, tok := range doc {
			c.tokenCounts[idx][tok]++
			c.totalToks[idx]++
			c.vocab[tok] = struct{}{}
		}
	}
	c.numDocs = len(docs)
	c.fitted = true
	return nil
}

// checkReady validates a classification request: the classifier must
// be fitted and the document list non-empty.
func (c *Classifier[T, L]) checkReady(docs [][]T) error {
	if !c.fitted {
		return ErrNotFitted
	}
	if len(docs) == 0 {
		return ErrEmptyInput
	}
	return nil
}

// logPosteriors scores one document against every class and returns
// the unnormalized log posteriors aligned with c.labels. An empty
// document scores on the class priors alone.
func (c *Classifier[T, L]) logPosteriors(doc []T) []float64 {
	vocabSize := float64(len(c.vocab))
	out := make([]float64, len(c.labels))
	for idx := range c.labels {
		lp := math.Log(float64(c.docCounts[idx]) / float64(c.numDocs))
		denom := float64(c.totalToks[idx]) + c.alpha*vocabSize
		counts := c.tokenCounts[idx]
		for _, tok := range doc {
			if _, known := c.vocab[tok]; !known {
				continue
			}
			lp += math.Log((float64(counts[tok]) + c.alpha) / denom)
		}
		out[idx] = lp
	}
	return out
}

// ClassLogPosteriors returns, for each document, the unnormalized log
// posterior of every class, keyed by label.
func (c *Classifier[T, L]) ClassLogPosteriors(docs [][]T) ([]map[L]float64, error) {
	if err := c.checkReady(docs); err != nil {
		return nil, err
	}
	out := make([]map[L]float64, len(docs))
	for i, doc := range docs {
		logs := c.logPosteriors(doc)
		m := make(map[L]float64, len(logs))
		for idx, label := range c.labels {
			m[label] = logs[idx]
		}
		out[i] = m
	}
	return out, nil
}

// Posteriors returns, for each document, the posterior probability of
// every class, keyed by label. Each document's probabilities sum to
// one; the normalization runs through log-sum-exp so long documents
// cannot underflow.
func (c *Classifier[T, L]) Posteriors(docs [][]T) ([]map[L]float64, error) {
	if err := c.checkReady(docs); err != nil {
		return nil, err
	}
	out := make([]map[L]float64, len(docs))
	for i, doc := range docs {
		logs := c.logPosteriors(doc)
		norm := floats.LogSumExp(logs)
		m := make(map[L]float64, len(logs))
		for idx, label := range c.labels {
			m[label] = math.Exp(logs[idx] - norm)
		}
		out[i] = m
	}
	return out, nil
}

// Predict returns the most probable class for each document. Ties
// break toward the label first encountered during Fit, so predictions
// are deterministic for a fixed training set.
func (c *Classifier[T, L]) Predict(docs [][]T) ([]L, error) {
	if err := c.checkReady(docs); err != nil {
		return nil, err
	}
	out := make([]L, len(docs))
	for i, doc := range docs {
		out[i] = c.labels[argmax(c.logPosteriors(doc))]
	}
	return out, nil
}

func argmax(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}

// Score classifies every document and returns the fraction predicted
// correctly.
func (c *Classifier[T, L]) Score(docs [][]T, labels []L) (float64, error) {
	if err := c.checkReady(docs); err != nil {
		return 0, err
	}
	if len(docs) != len(labels) {
		return 0, ErrLengthMismatch
	}
	preds, err := c.Predict(docs)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i, pred := range preds {
		if pred == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(docs)), nil
}
