package main

import (
	"os"
	"socketBoard/cmd/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
