package main

import "kwx/internal/cli"

func main() {
	cli.Execute()
}
