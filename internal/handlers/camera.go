package handlers

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
)

// defaultRotation is applied when rotate is called without a value.
const defaultRotation = 90

// CameraHandler tracks and reports the camera orientation.
type CameraHandler struct {
	out         io.Writer
	orientation int // degrees, 0-359
}

// NewCameraHandler creates a camera handler writing output to out.
func NewCameraHandler(out io.Writer) *CameraHandler {
	if out == nil {
		out = os.Stdout
	}
	return &CameraHandler{out: out}
}

// Get reports the current orientation.
func (h *CameraHandler) Get(args command.Args) handler.Result {
	if !args.Silent {
		fmt.Fprintf(h.out, "Camera orientation: %d degrees\n", h.orientation)
	}
	return handler.OKWithValue(h.orientation)
}

// Rotate turns the camera by the first value in degrees, or by the default
// when no value is given. Negative values rotate counterclockwise.
func (h *CameraHandler) Rotate(args command.Args) handler.Result {
	degrees := defaultRotation
	if len(args.Values) > 0 {
		d, err := strconv.Atoi(args.Values[0])
		if err != nil {
			return handler.Errorf("rotation %q is not an integer", args.Values[0])
		}
		degrees = d
	}

	h.orientation = ((h.orientation+degrees)%360 + 360) % 360

	if !args.Silent {
		fmt.Fprintf(h.out, "Rotating camera by %d degrees\n", degrees)
	}
	return handler.OKWithValue(h.orientation)
}
