// Package filesystem is the file access used for writing exported cards
// and generated config files.
//
// FS is backed by afero: the OS filesystem in the CLI and an in-memory one
// in tests.
package filesystem
