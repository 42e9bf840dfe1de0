package main

import "github.com/OpenTraceLab/OpenTraceSignals/cmd/otsig/cmd"

func main() {
	cmd.Execute()
}
