package main

import "github.com/finfree-dev/finfree/cmd"

func main() {
	cmd.Execute()
}
