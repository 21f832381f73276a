package main

import "github.com/k1LoW/dressgen/cmd"

func main() {
	cmd.Execute()
}
