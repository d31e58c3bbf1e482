// Package tasks manages the selfie analysis task lifecycle: selfie upload,
// queued execution through the analysis workflow, progress snapshot
// persistence, polling, and routine plan generation against completed
// results. Every operation is scoped to the owning user.
package tasks

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// Status is the coarse lifecycle state of a task. Fine-grained pipeline
// progress is reported separately through the Stage field.
type Status string

// Task lifecycle states.
const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Statuses returns all task lifecycle states.
func Statuses() []Status {
	return []Status{StatusQueued, StatusProcessing, StatusCompleted, StatusFailed}
}

// ParseStatus validates and converts a string to a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusQueued, StatusProcessing, StatusCompleted, StatusFailed:
		return status, nil
	}
	return "", ErrInvalidStatus
}

// UnmarshalJSON validates the status during JSON decoding.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

// Task is an analysis task record. Result holds the accumulated analysis
// snapshot, which grows step by step while the task is processing and is
// final once the status reaches completed. Stage names the most recently
// completed pipeline step. Intake and Routine are populated by routine plan
// generation. Error carries the failure message of the analysis run or the
// most recent routine generation attempt.
type Task struct {
	ID          uuid.UUID       `json:"id"`
	UserID      string          `json:"user_id"`
	Status      Status          `json:"status"`
	Stage       *string         `json:"stage,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
	Error       *string         `json:"error,omitempty"`
	RealAge     *int            `json:"real_age,omitempty"`
	Intake      json.RawMessage `json:"intake,omitempty"`
	Routine     json.RawMessage `json:"routine,omitempty"`
	ImageKey    string          `json:"-"`
	ContentType string          `json:"-"`
	ProgressSeq int             `json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateCommand contains the data for creating a task from an uploaded selfie.
type CreateCommand struct {
	UserID      string
	RealAge     *int
	ContentType string
	Data        []byte
}

// Image is a downloaded selfie stream. The caller must close Body.
type Image struct {
	Body        io.ReadCloser
	ContentType string
}
