package main

import "github.com/Lom209/logsplit/internal/cmd"

func main() {
	cmd.Execute()
}
