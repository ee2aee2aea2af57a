// Package main is the entry point for the pepcheck CLI.
package main

import "pepcheck.dev/pkg/pepcheck/cmd"

func main() {
	cmd.Execute()
}
