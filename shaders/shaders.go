package shaders

import (
	"bytes"
	"errors"

	"github.com/vortonsim/vortonview/gpu"
	"github.com/vortonsim/vortonview/logging"
)

type Shader struct {
	Id   gpu.Shader
	Type ShaderType
}

func (s *Shader) Delete(ctx gpu.Context) {
	ctx.DeleteShader(s.Id)
	s.Id = 0
}

func NewShaderProgram(ctx gpu.Context) (ShaderProgram, error) {

	id := ctx.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, &gpu.ResourceCreationError{Kind: gpu.ResourceKind_Program}
	}

	return ShaderProgram{Id: id}, nil
}

// LoadAndCompileCombinedShaderSrc compiles and links a single source holding several stages,
// each introduced by a '//shader:vertex', '//shader:fragment' or '//shader:geometry' line.
// Vertex and fragment stages are required.
func LoadAndCompileCombinedShaderSrc(ctx gpu.Context, shaderSrc []byte) (ShaderProgram, error) {

	shaderSources := bytes.Split(shaderSrc, []byte("//shader:"))
	if len(shaderSources) < 2 {
		return ShaderProgram{}, errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	type stageSrc struct {
		src []byte
		typ ShaderType
	}

	// Validate the whole source before touching the context
	stages := make([]stageSrc, 0, 3)
	hasVert, hasFrag := false, false
	for i := 0; i < len(shaderSources); i++ {

		src := shaderSources[i]

		//This can happen when the shader type is at the start of the file
		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}

		var shdrType ShaderType
		if bytes.HasPrefix(src, []byte("vertex")) {
			src = src[6:]
			shdrType = ShaderType_Vertex
			hasVert = true
		} else if bytes.HasPrefix(src, []byte("fragment")) {
			src = src[8:]
			shdrType = ShaderType_Fragment
			hasFrag = true
		} else if bytes.HasPrefix(src, []byte("geometry")) {
			src = src[8:]
			shdrType = ShaderType_Geometry
		} else {
			return ShaderProgram{}, errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment' or '//shader:geometry'")
		}

		stages = append(stages, stageSrc{src: src, typ: shdrType})
	}

	if len(stages) == 0 {
		return ShaderProgram{}, errors.New("no valid shaders found. Please put '//shader:vertex' or '//shader:fragment' or '//shader:geometry' before your shaders")
	}

	if !hasVert {
		return ShaderProgram{}, errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if !hasFrag {
		return ShaderProgram{}, errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	shdrProg, err := NewShaderProgram(ctx)
	if err != nil {
		return ShaderProgram{}, err
	}

	for i := 0; i < len(stages); i++ {

		shdr, err := CompileShaderOfType(ctx, stages[i].src, stages[i].typ)
		if err != nil {
			shdrProg.Delete(ctx)
			return ShaderProgram{}, err
		}

		shdrProg.AttachShader(ctx, shdr)
	}

	if err := shdrProg.Link(ctx); err != nil {
		return ShaderProgram{}, err
	}

	return shdrProg, nil
}

func CompileShaderOfType(ctx gpu.Context, shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := ctx.CreateShader(shaderType.ToGPU())
	if shaderId == 0 {
		return Shader{}, &gpu.ResourceCreationError{Kind: gpu.ResourceKind_Shader}
	}

	ctx.ShaderSource(shaderId, string(shaderSource))
	ctx.CompileShader(shaderId)

	ok, infoLog := ctx.ShaderStatus(shaderId)
	if !ok {
		logging.ErrLog.Println("Compilation of ", shaderType, " shader with id ", shaderId, " failed. Err: ", infoLog)
		ctx.DeleteShader(shaderId)
		return Shader{}, &ShaderCompileError{Type: shaderType, Log: infoLog}
	}

	return Shader{Id: shaderId, Type: shaderType}, nil
}
