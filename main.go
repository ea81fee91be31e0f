package main

import "github.com/iksnae/agent-workspace/cmd"

func main() {
	cmd.Execute()
}
