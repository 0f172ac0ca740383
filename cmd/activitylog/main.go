// Package main is the entry point for the activitylog CLI.
package main

import "github.com/mesh-intelligence/activitylog/internal/cli"

func main() {
	cli.Execute()
}
