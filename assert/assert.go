package assert

import (
	"fmt"

	"github.com/vortonsim/vortonview/logging"
)

// T panics with the formatted message when check is false.
// Use it for programmer errors only, never for runtime failures like a lost GL context.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	errMsg := fmt.Sprintf("Assert failed: "+msg, args...)
	logging.ErrLog.Output(2, errMsg)
	panic(errMsg)
}
