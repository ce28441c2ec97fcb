package main

import "github.com/mvp-scale/mvp-echo-scribe/internal/cli"

func main() {
	cli.Execute()
}
