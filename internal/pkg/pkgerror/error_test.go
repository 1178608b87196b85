package pkgerror

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	require.Equal(t, "ERROR_TYPE_VALIDATION", TypeValidation.String())
	require.Equal(t, "ERROR_TYPE_IO", TypeIO.String())
	require.Equal(t, "ERROR_TYPE_INTERNAL", TypeInternal.String())
	require.Equal(t, "ERROR_TYPE_UNKNOWN", Type(99).String())
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "ERROR_CODE_INVALID_POOL_SIZE", CodeInvalidPoolSize.String())
	require.Equal(t, "ERROR_CODE_FILE_READ", CodeFileRead.String())
	require.Equal(t, "ERROR_CODE_DIRECTORY", CodeDirectory.String())
	require.Equal(t, "ERROR_CODE_INTERNAL", Code(99).String())
}

func TestIOError(t *testing.T) {
	err := NewIO(fs.ErrNotExist, "/tmp/missing.log", CodeFileOpen)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, TypeIO, gerr.Type())
	require.Equal(t, CodeFileOpen, gerr.Code())
	require.Equal(t, "/tmp/missing.log", gerr.Msg())
	require.Equal(t, "/tmp/missing.log: file does not exist", gerr.Error())
	require.Equal(t, ExitFailure, gerr.ExitCode())
}

func TestValidationErrors(t *testing.T) {
	err := NewInvalidPoolSize(0)
	require.ErrorIs(t, err, ErrInvalidPoolSize)
	require.Equal(t, ExitInvalidArg, ExitCode(err))
	require.Contains(t, err.Error(), "pool size 0")

	root := errors.New("strconv.Atoi: parsing \"x\": invalid syntax")
	arg := NewInvalidArgument("poolSize", root)
	require.ErrorIs(t, arg, root)
	require.Equal(t, ExitInvalidArg, ExitCode(arg))
	require.Equal(t, CodeInvalidArgument, arg.(*Error).Code())
}

func TestExitCode(t *testing.T) {
	require.Equal(t, ExitOK, ExitCode(nil))
	require.Equal(t, ExitFailure, ExitCode(errors.New("plain")))
	require.Equal(t, ExitFailure, ExitCode(NewInternal(errors.New("boom"))))

	wrapped := fmt.Errorf("run: %w", NewInvalidPoolSize(-1))
	require.Equal(t, ExitInvalidArg, ExitCode(wrapped))
}

func TestErrorFallbackMessages(t *testing.T) {
	require.Equal(t, "Validation violation", new(nil, "", TypeValidation, CodeInternal).Error())
	require.Equal(t, "I/O failure", new(nil, "", TypeIO, CodeInternal).Error())
	require.Equal(t, "Internal error", new(nil, "", TypeInternal, CodeInternal).Error())
	require.Equal(t, "Unknown error", new(nil, "", Type(42), CodeInternal).Error())
}

func TestErrorStringIncludesDetails(t *testing.T) {
	err := NewIO(errors.New("short read"), "a.log", CodeFileRead).(*Error)
	str := err.String()
	require.Contains(t, str, "ERROR_TYPE_IO")
	require.Contains(t, str, "ERROR_CODE_FILE_READ")
	require.Contains(t, str, "a.log")
	require.Contains(t, str, "short read")
}
