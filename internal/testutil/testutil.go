// Package testutil holds helpers shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// WriteFile writes content to root/rel, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ReadFile returns the content of root/rel.
func ReadFile(t *testing.T, root, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// ErrorField returns the first zerr metadata value stored under key anywhere
// in the error tree of err.
func ErrorField(err error, key string) (any, bool) {
	for err != nil {
		if z, ok := err.(*zerr.Error); ok { //nolint:errorlint // the tree is walked level by level
			if v, found := z.Metadata()[key]; found {
				return v, true
			}
		}
		switch u := err.(type) { //nolint:errorlint // the tree is walked level by level
		case interface{ Unwrap() []error }:
			for _, branch := range u.Unwrap() {
				if v, ok := ErrorField(branch, key); ok {
					return v, true
				}
			}
			return nil, false
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		default:
			return nil, false
		}
	}
	return nil, false
}
