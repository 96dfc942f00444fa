package shaders

import (
	"github.com/vortonsim/vortonview/assert"
	"github.com/vortonsim/vortonview/gpu"
	"github.com/vortonsim/vortonview/logging"
)

type ShaderProgram struct {
	Id           gpu.Program
	VertShaderId gpu.Shader
	FragShaderId gpu.Shader
	GeomShaderId gpu.Shader
}

func (sp *ShaderProgram) AttachShader(ctx gpu.Context, shader Shader) {

	ctx.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = shader.Id
	default:
		assert.T(false, "Unknown shader type '%d' for shader id '%d'", shader.Type, shader.Id)
	}
}

// Link links the attached shaders and deletes them, as the program keeps what it needs.
// On failure the program itself is deleted too and a *ShaderLinkError is returned.
func (sp *ShaderProgram) Link(ctx gpu.Context) error {

	ctx.LinkProgram(sp.Id)
	sp.deleteShaders(ctx)

	ok, infoLog := ctx.ProgramStatus(sp.Id)
	if ok {
		return nil
	}

	logging.ErrLog.Println("Linking of shader program with id ", sp.Id, " failed. Err: ", infoLog)
	sp.Delete(ctx)
	return &ShaderLinkError{Log: infoLog}
}

func (sp *ShaderProgram) deleteShaders(ctx gpu.Context) {

	if sp.VertShaderId != 0 {
		ctx.DeleteShader(sp.VertShaderId)
		sp.VertShaderId = 0
	}

	if sp.FragShaderId != 0 {
		ctx.DeleteShader(sp.FragShaderId)
		sp.FragShaderId = 0
	}

	if sp.GeomShaderId != 0 {
		ctx.DeleteShader(sp.GeomShaderId)
		sp.GeomShaderId = 0
	}
}

func (sp *ShaderProgram) Bind(ctx gpu.Context) {
	ctx.UseProgram(sp.Id)
}

// AttribLoc returns the location of the named vertex attribute, or -1 if the
// program has no active attribute by that name.
func (sp *ShaderProgram) AttribLoc(ctx gpu.Context, attribName string) int32 {
	return ctx.GetAttribLocation(sp.Id, attribName)
}

// UniformLoc returns the location of the named uniform, or -1 if the program has
// no active uniform by that name.
func (sp *ShaderProgram) UniformLoc(ctx gpu.Context, uniformName string) int32 {
	return ctx.GetUniformLocation(sp.Id, uniformName)
}

func (sp *ShaderProgram) Delete(ctx gpu.Context) {

	if sp.Id == 0 {
		return
	}

	sp.deleteShaders(ctx)
	ctx.DeleteProgram(sp.Id)
	sp.Id = 0
}
