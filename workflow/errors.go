// Package workflow implements the five-step selfie analysis pipeline for
// Lumiderm. It provides the accumulator types, prompt composition, and the
// linear state graph (global_profile → texture → pigmentation → acne → aging).
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	ErrStepFailed   = errors.New("analysis step failed")
	ErrMissingState = errors.New("workflow state missing required key")
)
