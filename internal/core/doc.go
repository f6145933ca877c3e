// Package core holds the small shared abstractions used by the rest of
// cordovagen: the FileSystem interface with its OS and in-memory
// implementations, and the permission used for generated files.
package core
