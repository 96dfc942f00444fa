package shaders

import (
	"errors"
	"fmt"
)

var (
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrShaderLink    = errors.New("shader program link failed")
)

type ShaderCompileError struct {
	Type ShaderType
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Type, e.Log)
}

func (e *ShaderCompileError) Is(target error) bool {
	return target == ErrShaderCompile
}

type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return "failed to link shader program: " + e.Log
}

func (e *ShaderLinkError) Is(target error) bool {
	return target == ErrShaderLink
}
