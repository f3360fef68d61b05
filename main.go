package main

import "eve-scout/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
