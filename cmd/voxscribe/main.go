package main

import "voxscribe/internal/cli"

func main() {
	cli.Execute()
}
