package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMissingFile(t *testing.T) {

	snap, err := Load("./testdata/does-not-exist.fbx")
	assert.Error(t, err)
	assert.Nil(t, snap)
}
