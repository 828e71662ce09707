// Command gqlast lexes and parses GraphQL October 2021 documents.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
