package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEnvironment(t *testing.T) {
	got := resolveEnvironment(
		[]string{"PATH=/usr/bin", "HOME=/root", "MALFORMED"},
		[]string{"FANOUT_TARGET=react", "HOME=/tmp"},
	)
	assert.Equal(t, []string{"PATH=/usr/bin", "HOME=/tmp", "FANOUT_TARGET=react"}, got)
}

func TestLookPath(t *testing.T) {
	_, err := lookPath("sh", []string{"PATH=/nonexistent"})
	assert.Error(t, err)

	_, err = lookPath("sh", nil)
	assert.Error(t, err)
}

func TestTailBuffer(t *testing.T) {
	b := &tailBuffer{limit: 4}
	_, _ = b.Write([]byte("abc"))
	_, _ = b.Write([]byte("defg"))
	assert.Equal(t, "defg", b.String())
}
