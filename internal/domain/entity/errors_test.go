package entity

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipelineError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("process: %w", NewOCRServiceError("quota exceeded", nil))

	require.ErrorIs(t, err, ErrOCRService)
	require.NotErrorIs(t, err, ErrInvalidImage)
	require.NotErrorIs(t, err, ErrFilesystem)

	var perr *PipelineError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "quota exceeded", perr.Message)
}

func TestPipelineError_UnwrapsCause(t *testing.T) {
	err := NewSegmentWriteError(3, "/tmp/out/segment_3.png", fs.ErrPermission)

	require.ErrorIs(t, err, ErrFilesystem)
	require.ErrorIs(t, err, fs.ErrPermission)
	require.Equal(t, 3, err.Index)
	require.Contains(t, err.Error(), "segment 3")
	require.Contains(t, err.Error(), "/tmp/out/segment_3.png")
}

func TestPipelineError_Message(t *testing.T) {
	err := NewInvalidImageError("zero dimensions", nil)
	require.Equal(t, "INVALID_IMAGE: zero dimensions", err.Error())
	require.Equal(t, -1, err.Index)
	require.False(t, errors.Is(err, errors.New("INVALID_IMAGE")))
}
