// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package bayes

import (
	"github.com/slate-ml/slate/internal/bayes"
)

// Classifier is a multinomial naive Bayes classifier with Laplace
// smoothing over token type T and label type L.
type Classifier[T comparable, L comparable] = bayes.Classifier[T, L]

// Errors returned by classifier operations.
var (
	ErrNotFitted      = bayes.ErrNotFitted
	ErrEmptyInput     = bayes.ErrEmptyInput
	ErrLengthMismatch = bayes.ErrLengthMismatch
)

// New returns an untrained classifier with smoothing strength alpha;
// alpha <= 0 selects add-one smoothing.
//
// Example:
//
//	clf := bayes.New[string, string](1)
//	err := clf.Fit(docs, labels)
func New[T comparable, L comparable](alpha float64) *Classifier[T, L] {
	return bayes.New[T, L](alpha)
}
