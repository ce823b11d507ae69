// pipeforge turns typed CI/CD configuration into reviewable, diff-stable
// YAML artifacts for pipelines, templates, and environments.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
