package main

import "Kleene/cmd"

func main() {
	cmd.Execute()
}
