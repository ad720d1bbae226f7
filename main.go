package main

import "github.com/mouse-blink/vbs2js/cmd"

func main() {
	cmd.Execute()
}
