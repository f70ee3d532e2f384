// Package repository holds shared repository-level definitions.
package repository

import "errors"

// ErrNotFound is returned by write operations targeting a record that does
// not exist. Read operations return (nil, nil) instead.
var ErrNotFound = errors.New("record not found")
