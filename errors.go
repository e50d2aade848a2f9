package kbc

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
// Only these abort an evaluation; problems inside individual records are
// logged and absorbed into the metrics.
var (
	// ErrPathUnset indicates no prediction file path was given.
	ErrPathUnset = errors.New("kbc: prediction file path not set")

	// ErrFileNotFound indicates the prediction file does not exist.
	ErrFileNotFound = errors.New("kbc: prediction file not found")

	// ErrNotRegularFile indicates the path exists but is a directory or device.
	ErrNotRegularFile = errors.New("kbc: prediction file is not a regular file")

	// ErrReadFailed indicates the prediction file could not be read.
	ErrReadFailed = errors.New("kbc: reading prediction file failed")
)
