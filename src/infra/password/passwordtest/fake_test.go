package passwordtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokeshare/src/core/ports"
)

var _ ports.PasswordHasher = FakeInsecureHasher{}

func TestFakeInsecureHasher(t *testing.T) {
	var h FakeInsecureHasher

	hash, err := h.Hash("twixrox")
	require.NoError(t, err)

	ok, _ := h.Compare("twixrox", hash)
	assert.True(t, ok)
	ok, _ = h.Compare("twixrox", "twixrox")
	assert.False(t, ok, "a plaintext value is not a fake hash")
}
