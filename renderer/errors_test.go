package renderer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraError(t *testing.T) {

	camErr := errors.New("zero-area viewport")

	var err error = &CameraError{Err: camErr}
	assert.ErrorIs(t, err, camErr)
	assert.Equal(t, "camera error: zero-area viewport", err.Error())

	var ce *CameraError
	assert.ErrorAs(t, err, &ce)
	assert.Same(t, camErr, ce.Err)
}
