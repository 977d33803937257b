// cmd/readucks/main.go
package main

import (
	"os"

	"github.com/rambaut/readucks/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
