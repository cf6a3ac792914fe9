package main

import "stegcalc/cmd/stegcalc/commands"

func main() {
	commands.Execute()
}
