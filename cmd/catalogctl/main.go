// Command catalogctl inspects the storefront catalog from a terminal: menus,
// collections, path resolution and search, printed as YAML or JSON.
package main

import (
	"fmt"
	"os"

	"ambalaje-storefront/internal/logger"
)

func main() {
	logger.Init("cli")
	defer logger.Sync()

	if err := newRootCommand(buildDependencies).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
