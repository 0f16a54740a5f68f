package main

import "github.com/scrollkit/scrollkit/internal/cmd"

func main() {
	cmd.Execute()
}
