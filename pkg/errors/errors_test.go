package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeEmptyStrokeSet, "sample has no strokes")
	assert.Equal(t, "[INK_002] sample has no strokes", err.Error())

	withDetail := err.WithDetail("ui=iso123")
	assert.Equal(t, "[INK_002] sample has no strokes: ui=iso123", withDetail.Error())
	// WithDetail must not mutate the receiver.
	assert.Empty(t, err.Detail)
}

func TestWrap_Unwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := Wrap(cause, ErrCodeGroundTruthLoad, "failed to read ground truth")

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
	assert.Equal(t, ErrCodeInternal, CodeOf(io.EOF))
	assert.Equal(t, ErrCodeUnknownLabel, CodeOf(New(ErrCodeUnknownLabel, "no entry")))

	// Codes survive fmt wrapping.
	wrapped := fmt.Errorf("batch: %w", New(ErrCodeMissingIdentifier, "no UI annotation"))
	assert.Equal(t, ErrCodeMissingIdentifier, CodeOf(wrapped))
	assert.True(t, HasCode(wrapped, ErrCodeMissingIdentifier))
	assert.False(t, HasCode(wrapped, ErrCodeEmptyStrokeSet))
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeDiscovery, "no symbol files under %q", "/data")
	assert.Equal(t, `[DATA_001] no symbol files under "/data"`, err.Error())
}
