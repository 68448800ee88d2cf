package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	p := Ptr(0)
	require.NotNil(t, p)
	assert.Equal(t, 0, *p)
}

func TestPtrOrNil(t *testing.T) {
	assert.Nil(t, PtrOrNil(""))
	assert.Nil(t, PtrOrNil(0))

	s := PtrOrNil("math")
	require.NotNil(t, s)
	assert.Equal(t, "math", *s)
}
