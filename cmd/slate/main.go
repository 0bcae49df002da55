// Package main provides the Slate ML command line interface.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "version":
		fmt.Printf("Slate ML %s\n", version)
	case "net":
		runNet(os.Args[2:])
	case "bayes":
		runBayes(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "slate: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Slate ML - Classic Machine Learning for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  net        Train a two-layer network on synthetic blobs")
	fmt.Println("  bayes      Classify text with naive Bayes")
	fmt.Println("")
	fmt.Println("Run 'slate <command> -h' for command flags.")
}
