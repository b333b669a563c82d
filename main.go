package main

import "github.com/gaurav-prasanna/notepipe/cmd"

func main() {
	cmd.Execute()
}
