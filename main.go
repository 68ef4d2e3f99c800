package main

import "sporthub-cli/cmd"

func main() {
	cmd.Execute()
}
