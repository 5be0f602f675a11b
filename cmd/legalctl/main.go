// Command legalctl runs the classifier, the document analyzer and the
// knowledge search offline against the built-in knowledge base.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
