package main

import "github.com/kamal-hamza/lbl-cli/cmd"

func main() {
	cmd.Execute()
}
