// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bayes provides a multinomial naive Bayes text classifier.
//
// # Overview
//
// The classifier is generic over both the token and the label type:
// word strings, BPE token ids, or anything else comparable. Training
// counts token occurrences per class; classification adds the class
// log prior to the Laplace-smoothed log likelihood of each document
// token and picks the class with the highest total.
//
// # Basic Usage
//
//	import (
//	    "github.com/slate-ml/slate/bayes"
//	    "github.com/slate-ml/slate/tokenizer"
//	)
//
//	func main() {
//	    docs, _ := tokenizer.TokenizeAll(tokenizer.NewWords(), []string{
//	        "Win free money now!",
//	        "Lunch meeting at noon?",
//	    })
//	    labels := []string{"spam", "ham"}
//
//	    clf := bayes.New[string, string](1)
//	    if err := clf.Fit(docs, labels); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    query, _ := tokenizer.TokenizeAll(tokenizer.NewWords(), []string{"free money meeting"})
//	    preds, _ := clf.Predict(query)
//	    probs, _ := clf.Posteriors(query)
//	    fmt.Println(preds[0], probs[0])
//	}
//
// # Numeric Conventions
//
// Scores are accumulated in log space and only exponentiated by
// Posteriors, which normalizes with log-sum-exp, so long documents
// cannot underflow to zero probability. A Classifier is not safe for
// concurrent use.
package bayes
