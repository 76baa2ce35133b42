package scmerr

import (
	"testing"

	stderrors "errors"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatsAsCategoryColonMessage(t *testing.T) {
	err := Runtimef("division by zero")
	assert.Equal(t, "RuntimeError: division by zero", err.Error())
}

func TestIsMatchesCategory(t *testing.T) {
	err := Namef("unbound name: x")
	assert.True(t, Is(err, Name))
	assert.False(t, Is(err, Runtime))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("underlying failure")
	wrapped := Wrap(Runtime, cause, "evaluating argument")
	assert.Equal(t, cause.Error(), wrapped.Cause().Error())
	assert.True(t, Is(wrapped, Runtime))
}

func TestFromRecoverWrapsErrorValues(t *testing.T) {
	err := FromRecover(stderrors.New("boom"))
	assert.Equal(t, Unknown, err.Category)
	assert.Contains(t, err.Error(), "boom")
}

func TestFromRecoverWrapsNonErrorValues(t *testing.T) {
	err := FromRecover("some panic string")
	assert.Equal(t, Unknown, err.Category)
	assert.Contains(t, err.Error(), "some panic string")
}

func TestIsReturnsFalseForPlainErrors(t *testing.T) {
	assert.False(t, Is(stderrors.New("plain"), Runtime))
}
