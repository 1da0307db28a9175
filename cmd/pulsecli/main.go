package main

import (
	"errors"
	"fmt"
	"os"

	"Pulse/internal/health/measure"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0
	ExitInvalidInput = 1 // An input field failed validation
	ExitError        = 2 // Configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var ve measure.ValidationError
		if errors.As(err, &ve) {
			os.Exit(ExitInvalidInput)
		}
		os.Exit(ExitError)
	}
}
