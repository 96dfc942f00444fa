package shaders

import (
	"github.com/vortonsim/vortonview/assert"
	"github.com/vortonsim/vortonview/gpu"
)

type ShaderType int32

func (s ShaderType) ToGPU() gpu.ShaderStage {

	switch s {
	case ShaderType_Vertex:
		return gpu.ShaderStage_Vertex
	case ShaderType_Fragment:
		return gpu.ShaderStage_Fragment
	case ShaderType_Geometry:
		return gpu.ShaderStage_Geometry

	default:
		assert.T(false, "Unknown shader type '%d'", s)
		return 0
	}
}

func (s ShaderType) String() string {

	switch s {
	case ShaderType_Vertex:
		return "vertex"
	case ShaderType_Fragment:
		return "fragment"
	case ShaderType_Geometry:
		return "geometry"
	default:
		return "unknown"
	}
}

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
	ShaderType_Geometry
)
