package main

import "github.com/sandipbaste/My-Portfolio/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
