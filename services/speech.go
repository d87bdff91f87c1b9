package services

import (
	"context"
	"io"
)

// SpeechCapture is an optional capability for turning recorded audio
// into a transcript. It is injected where needed; a nil value means the
// runtime has no speech support and the voice affordance is disabled up
// front instead of failing at invocation time.
type SpeechCapture interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}
