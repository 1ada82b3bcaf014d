package main

import (
	"os"

	"github.com/LongerDude/Library-Management-System/internal/catalog"
	"github.com/LongerDude/Library-Management-System/internal/console"
)

func main() {
	shell := console.NewShell(catalog.New(), os.Stdin, os.Stdout)
	shell.Run()
}
