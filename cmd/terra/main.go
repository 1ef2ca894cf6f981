package main

import "github.com/dixieflatline76/Terra/cmd/terra/commands"

func main() {
	commands.Execute()
}
