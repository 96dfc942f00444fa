package gpu

import (
	"errors"
	"fmt"
)

var ErrResourceCreation = errors.New("gpu resource creation failed")

type ResourceKind string

const (
	ResourceKind_Buffer      ResourceKind = "buffer"
	ResourceKind_VertexArray ResourceKind = "vertex_array"
	ResourceKind_Shader      ResourceKind = "shader"
	ResourceKind_Program     ResourceKind = "program"
)

// ResourceCreationError is returned when the context hands back a zero object name,
// which usually means the context was lost or the GPU is out of memory.
type ResourceCreationError struct {
	Kind ResourceKind
}

func (e *ResourceCreationError) Error() string {
	return fmt.Sprintf("failed to create gpu %s", e.Kind)
}

func (e *ResourceCreationError) Is(target error) bool {
	return target == ErrResourceCreation
}
