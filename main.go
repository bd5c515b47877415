package main

import "github.com/robalobadob/wordle/internal/cli"

func main() {
	cli.Execute()
}
