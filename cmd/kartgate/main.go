package main

import "github.com/mcoot/kartgate/internal/cli"

func main() {
	cli.Execute()
}
