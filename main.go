package main

import "github.com/devonmarsh/octastep/cmd"

func main() {
	cmd.Execute()
}
