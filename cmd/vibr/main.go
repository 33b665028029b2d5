package main

import "vibr/internal/cli"

func main() {
	cli.Execute()
}
