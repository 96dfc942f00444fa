// Package model seeds vorton snapshots from 3D model files. It is the only package that
// links the native assimp library.
package model

import (
	"errors"

	"github.com/bloeys/assimp-go/asig"
	"github.com/vortonsim/vortonview/simulation"
)

// Load imports a model file and turns every vertex of every mesh into a vorton,
// in file order. Useful for seeding shapes that are easier to author in a modeling tool.
func Load(modelPath string) (*simulation.Snapshot, error) {

	scene, release, err := asig.ImportFile(modelPath, asig.PostProcessTriangulate)
	if err != nil {
		return nil, errors.New("Failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return nil, errors.New("No meshes found in file: " + modelPath)
	}

	vertCount := 0
	for i := 0; i < len(scene.Meshes); i++ {
		vertCount += len(scene.Meshes[i].Vertices)
	}

	vortons := make([]simulation.Vorton, 0, vertCount)
	for i := 0; i < len(scene.Meshes); i++ {

		verts := scene.Meshes[i].Vertices
		for j := 0; j < len(verts); j++ {
			vortons = append(vortons, simulation.Vorton{
				Pos: [3]float64{float64(verts[j].X()), float64(verts[j].Y()), float64(verts[j].Z())},
			})
		}
	}

	return simulation.NewSnapshot(vortons), nil
}
