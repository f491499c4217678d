package main

import "github.com/mouse-blink/scanctl/cmd"

func main() {
	cmd.Execute()
}
