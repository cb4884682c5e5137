//go:build tools
// +build tools

// Tracks the mockgen dependency used by go:generate.
package main

import (
	_ "go.uber.org/mock/mockgen"
)
