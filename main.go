package main

import "github.com/naka-gawa/tpm-agent/cmd"

func main() {
	cmd.Execute()
}
