package main

import "github.com/galanta/cit/internal/commands"

func main() {
	commands.Execute()
}
