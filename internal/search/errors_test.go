package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	assert.False(t, errors.Is(ErrSuppressed, ErrUnknownMode), "ErrSuppressed should not equal ErrUnknownMode")
	assert.NotEmpty(t, ErrSuppressed.Error())
	assert.NotEmpty(t, ErrUnknownMode.Error())
}
