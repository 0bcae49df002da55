package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/slate-ml/slate/bayes"
	"github.com/slate-ml/slate/tokenizer"
)

// A tiny labelled corpus so the demo works out of the box.
var spamCorpus = []struct {
	label string
	text  string
}{
	{"spam", "WIN a FREE phone now! Click here to claim your prize"},
	{"spam", "Lowest prices on meds, buy now, limited time offer"},
	{"spam", "You have been selected for a cash prize, act now"},
	{"spam", "Free money!!! No credit check, instant approval"},
	{"spam", "Congratulations, you won the lottery, send your details"},
	{"ham", "Are we still on for lunch at noon tomorrow?"},
	{"ham", "The quarterly report is attached, please review"},
	{"ham", "Can you pick up milk on the way home?"},
	{"ham", "Meeting moved to 3pm, same room as usual"},
	{"ham", "Thanks for the feedback, I will update the draft"},
}

// runBayes trains a naive Bayes classifier on the built-in corpus and
// classifies either the given text or two sample lines.
func runBayes(args []string) {
	fs := flag.NewFlagSet("bayes", flag.ExitOnError)
	alpha := fs.Float64("alpha", 1, "Laplace smoothing strength")
	bpe := fs.String("bpe", "", "BPE encoding to tokenize with (e.g. cl100k_base); default splits words")
	text := fs.String("text", "", "text to classify; default runs built-in samples")
	fs.Parse(args)

	var tk tokenizer.Tokenizer = tokenizer.NewWords()
	if *bpe != "" {
		bt, err := tokenizer.NewTikToken(*bpe)
		if err != nil {
			log.Fatalf("slate bayes: %v", err)
		}
		tk = bt
	}

	texts := make([]string, len(spamCorpus))
	labels := make([]string, len(spamCorpus))
	for i, ex := range spamCorpus {
		texts[i] = ex.text
		labels[i] = ex.label
	}

	docs, err := tokenizer.TokenizeAll(tk, texts)
	if err != nil {
		log.Fatalf("slate bayes: %v", err)
	}
	clf := bayes.New[string, string](*alpha)
	if err := clf.Fit(docs, labels); err != nil {
		log.Fatalf("slate bayes: %v", err)
	}

	inputs := []string{
		"Click now to win free cash",
		"Lunch tomorrow after the meeting?",
	}
	if *text != "" {
		inputs = []string{*text}
	}

	queries, err := tokenizer.TokenizeAll(tk, inputs)
	if err != nil {
		log.Fatalf("slate bayes: %v", err)
	}
	preds, err := clf.Predict(queries)
	if err != nil {
		log.Fatalf("slate bayes: %v", err)
	}
	probs, err := clf.Posteriors(queries)
	if err != nil {
		log.Fatalf("slate bayes: %v", err)
	}

	for i, in := range inputs {
		fmt.Printf("%q\n", in)
		for _, label := range clf.Labels() {
			fmt.Printf("  P(%s) = %.4f\n", label, probs[i][label])
		}
		fmt.Printf("  -> %s\n", preds[i])
	}
}
