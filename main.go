package main

import "github.com/mouse-blink/scopes/cmd"

func main() {
	cmd.Execute()
}
