package renderer

// CameraError wraps a failure reported by the camera while rendering
type CameraError struct {
	Err error
}

func (e *CameraError) Error() string {
	return "camera error: " + e.Err.Error()
}

func (e *CameraError) Unwrap() error {
	return e.Err
}
