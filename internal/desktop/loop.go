package desktop

import "context"

// keepRunning reports whether a frame loop should render another frame.
func keepRunning(ctx context.Context, closeRequested bool) bool {
	return !closeRequested && ctx.Err() == nil
}
