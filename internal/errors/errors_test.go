package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCode(t *testing.T) {
	base := StorageError("disk full")
	wrapped := Wrap(base, "saving check-in")

	assert.Equal(t, CodeStorageError, GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "saving check-in")
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "anything"))
	assert.Nil(t, Wrapf(nil, "anything %d", 1))
	assert.Nil(t, WithCode(CodeNotFound, nil))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, stderrors.New("boom"))
	require.True(t, IsAppError(err))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, CodeNotFound, NotFound("check-in").Code)
	assert.Contains(t, NotFound("check-in").Error(), "check-in not found")
	assert.Equal(t, CodeConfigInvalid, ConfigInvalid("bad").Code)
	assert.Equal(t, CodeSignalLoad, GetCode(SignalLoadError("video", stderrors.New("io"))))
	assert.Equal(t, CodeSummarizerError, GetCode(SummarizerError(stderrors.New("timeout"))))
}
