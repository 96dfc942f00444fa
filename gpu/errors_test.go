package gpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceCreationError(t *testing.T) {

	var err error = &ResourceCreationError{Kind: ResourceKind_VertexArray}
	assert.Equal(t, "failed to create gpu vertex_array", err.Error())
	assert.ErrorIs(t, err, ErrResourceCreation)

	wrapped := fmt.Errorf("frame 12: %w", err)
	assert.ErrorIs(t, wrapped, ErrResourceCreation)

	var rce *ResourceCreationError
	assert.True(t, errors.As(wrapped, &rce))
	assert.Equal(t, ResourceKind_VertexArray, rce.Kind)
}

func TestShaderStageString(t *testing.T) {
	assert.Equal(t, "vertex", ShaderStage_Vertex.String())
	assert.Equal(t, "fragment", ShaderStage_Fragment.String())
	assert.Equal(t, "geometry", ShaderStage_Geometry.String())
	assert.Equal(t, "unknown", ShaderStage(1).String())
}
