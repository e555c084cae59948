// Package magetasks provides the build, test and lint tasks behind the
// Magefile. Each task shells out to the Go toolchain and reports through the
// console helpers.
package magetasks
