//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the demo host.
func (Run) Demo() error {
	fmt.Println("Run combiner demo...")
	if _, err := executeCmd("go", withArgs("run", "main.go"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the test suite with the race detector.
func (Run) Tests() error {
	if _, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
