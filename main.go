package main

import "github.com/theirongolddev/finpulse/cmd"

func main() {
	cmd.Execute()
}
