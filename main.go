package main

import "github.com/kamal-hamza/icecofin/cmd"

func main() {
	cmd.Execute()
}
