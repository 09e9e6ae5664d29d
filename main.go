package main

import "github.com/iksnae/exoquery/cmd"

func main() {
	cmd.Execute()
}
