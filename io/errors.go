package io

import (
	"fmt"
	"log"
	"os"
)

// ExitWithMessage prints err to stderr and exits with a non-zero status,
// mirroring goalign's cmd-level fatal path.
func ExitWithMessage(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// LogError logs err as a warning without terminating the process.
func LogError(err error) {
	log.Println(err)
}
