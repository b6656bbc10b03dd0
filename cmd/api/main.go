// Command financequest is the API server entry point; it delegates to
// the cobra command tree in cmd/cli (serve, migrate, seed).
package main

import (
	cmd "financequest/cmd/cli"
)

func main() {
	cmd.Execute()
}
