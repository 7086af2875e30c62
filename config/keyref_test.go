package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKeyRef(t *testing.T) {
	t.Setenv("ANCHOR_TEST_KEY", "0xabcdef")
	assert.Equal(t, "0xabcdef", ResolveKeyRef("env:ANCHOR_TEST_KEY"))
	assert.Equal(t, "", ResolveKeyRef("env:ANCHOR_TEST_KEY_UNSET"))
	assert.Equal(t, "deadbeef", ResolveKeyRef("deadbeef"))
	assert.Equal(t, "", ResolveKeyRef(""))
}
