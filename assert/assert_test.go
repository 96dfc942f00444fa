package assert

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {

	tassert.NotPanics(t, func() { T(true, "never shown") })
	tassert.PanicsWithValue(t, "Assert failed: bad value 7", func() { T(false, "bad value %d", 7) })
}
