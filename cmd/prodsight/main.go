// cmd/prodsight/main.go
package main

import (
	cmd "github.com/mwiater/prodsight/internal/cli"
)

// main starts the prodsight CLI by delegating to the cobra root command.
func main() {
	cmd.Execute()
}
