package main

import "github.com/kamusis/advising-cli/cmd"

func main() {
	cmd.Execute()
}
