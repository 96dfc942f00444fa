// Package vortonrender draws the vortons of a simulation as a point cloud.
package vortonrender

import (
	_ "embed"
	"errors"
	"fmt"
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/vortonsim/vortonview/buffers"
	"github.com/vortonsim/vortonview/gpu"
	"github.com/vortonsim/vortonview/logging"
	"github.com/vortonsim/vortonview/renderer"
	"github.com/vortonsim/vortonview/shaders"
)

const (
	positionAttrib  = "vPosition"
	transformUnif   = "uMatrix"
	floatsPerVertex = 3

	// maxVortons is the largest count a single DrawArrays call can take
	maxVortons = math.MaxInt32
)

var (
	//go:embed vorton.glsl
	vortonShaderSrc []byte

	ErrDeleted        = errors.New("vorton renderer used after Delete")
	ErrTooManyVortons = errors.New("too many vortons for one draw call")
)

var _ renderer.Element = &VortonRender{}

// VortonRender owns one shader program plus the vertex buffer and vertex array it draws
// from. The GPU objects are created on the first Draw and reused by every later one.
//
// Not safe for concurrent use; call it from the thread owning the GPU context.
type VortonRender struct {
	prog shaders.ShaderProgram
	vbo  buffers.VertexBuffer
	vao  buffers.VertexArray

	// vertices holds x,y,z per vortex of the last successful Draw, and nVertices its vertex count.
	vertices  []float32
	nVertices int32

	// staging is filled and uploaded, then swapped with vertices once the geometry is in place.
	// Both keep their capacity across frames.
	staging []float32
}

func New(ctx gpu.Context) (*VortonRender, error) {

	prog, err := shaders.LoadAndCompileCombinedShaderSrc(ctx, vortonShaderSrc)
	if err != nil {
		logging.ErrLog.Println("Failed to create vorton renderer. Err: ", err)
		return nil, err
	}

	return &VortonRender{
		prog:     prog,
		vertices: []float32{},
	}, nil
}

// Draw uploads the positions of every vorton in sim, in order, then draws them with cam.
//
// The tracked vertices only change once the new geometry is uploaded and described.
// If the camera fails afterwards the new geometry is kept and a *renderer.CameraError returned.
func (r *VortonRender) Draw(ctx gpu.Context, cam renderer.Camera, sim renderer.Simulation) error {

	if r.prog.Id == 0 {
		return ErrDeleted
	}

	vortons := sim.Vortons()
	nVertices, err := vertexCount(len(vortons))
	if err != nil {
		return err
	}

	if r.vbo.Id == 0 {

		vbo, err := buffers.NewVertexBuffer(ctx, buffers.Element{ElementType: buffers.DataTypeVec3})
		if err != nil {
			return err
		}

		r.vbo = vbo
	}

	staging := r.staging[:0]
	if cap(staging) < len(vortons)*floatsPerVertex {
		staging = make([]float32, 0, len(vortons)*floatsPerVertex)
	}

	for i := 0; i < len(vortons); i++ {
		p := vortons[i].Position()
		staging = append(staging, float32(p[0]), float32(p[1]), float32(p[2]))
	}
	r.staging = staging

	// Nothing may append to staging until the upload returns
	r.vbo.SetData(ctx, r.staging, buffers.BufUsage_Static_Draw)

	if r.vao.Id == 0 {

		vao, err := buffers.NewVertexArray(ctx)
		if err != nil {
			return err
		}

		r.vao = vao
	}

	// Describes attribute 0 as tightly packed vec3s and enables it
	r.vao.AddVertexBuffer(ctx, r.vbo)

	loc := r.prog.AttribLoc(ctx, positionAttrib)
	if loc >= 0 {
		ctx.EnableVertexAttribArray(uint32(loc))
	} else {
		logging.WarnLog.Printf("Attribute '%s' not found on vorton shader program %d\n", positionAttrib, r.prog.Id)
	}

	r.vertices, r.staging = r.staging, r.vertices
	r.nVertices = nVertices

	return r.Redraw(ctx, cam)
}

// Redraw draws the geometry of the last successful Draw using the current camera transform.
// Before any Draw it is valid and draws nothing.
func (r *VortonRender) Redraw(ctx gpu.Context, cam renderer.Camera) error {

	if r.prog.Id == 0 {
		return ErrDeleted
	}

	r.prog.Bind(ctx)
	loc := r.prog.UniformLoc(ctx, transformUnif)

	viewProj, err := cam.ViewProjection()
	if err != nil {
		return &renderer.CameraError{Err: err}
	}

	m := flattenMat4(&viewProj)
	ctx.UniformMatrix4fv(loc, false, &m)

	if r.vao.Id != 0 {
		r.vao.Bind(ctx)
	}

	ctx.DrawArrays(gpu.Primitive_Points, 0, r.nVertices)
	return nil
}

// Vertices returns a copy of the x,y,z floats uploaded by the last successful Draw
func (r *VortonRender) Vertices() []float32 {
	out := make([]float32, len(r.vertices))
	copy(out, r.vertices)
	return out
}

func (r *VortonRender) VertexCount() int {
	return int(r.nVertices)
}

// Delete releases all GPU objects. Calling it again does nothing.
func (r *VortonRender) Delete(ctx gpu.Context) {

	r.vao.Delete(ctx)
	r.vbo.Delete(ctx)
	r.prog.Delete(ctx)

	r.vertices = r.vertices[:0]
	r.staging = nil
	r.nVertices = 0
}

// vertexCount converts a vorton count to a draw count, refusing counts DrawArrays can't take
func vertexCount(nVortons int) (int32, error) {

	if nVortons > maxVortons {
		return 0, fmt.Errorf("%w: %d, at most %d per draw", ErrTooManyVortons, nVortons, maxVortons)
	}

	return int32(nVortons), nil
}

// flattenMat4 lays m out column after column, the order uniform uploads expect untransposed
func flattenMat4(m *gglm.Mat4) [16]float32 {

	var out [16]float32
	for col := 0; col < 4; col++ {
		copy(out[col*4:col*4+4], m.Data[col][:])
	}

	return out
}
