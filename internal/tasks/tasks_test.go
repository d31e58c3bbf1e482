package tasks_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/lumiderm/lumiderm/internal/tasks"
)

func TestStatuses(t *testing.T) {
	statuses := tasks.Statuses()
	if len(statuses) != 4 {
		t.Fatalf("len(Statuses()) = %d, want 4", len(statuses))
	}

	want := []tasks.Status{
		tasks.StatusQueued,
		tasks.StatusProcessing,
		tasks.StatusCompleted,
		tasks.StatusFailed,
	}
	for i, s := range statuses {
		if s != want[i] {
			t.Errorf("Statuses()[%d] = %q, want %q", i, s, want[i])
		}
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		tests := []struct {
			input string
			want  tasks.Status
		}{
			{"queued", tasks.StatusQueued},
			{"processing", tasks.StatusProcessing},
			{"completed", tasks.StatusCompleted},
			{"failed", tasks.StatusFailed},
		}

		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				got, err := tasks.ParseStatus(tt.input)
				if err != nil {
					t.Fatalf("ParseStatus(%q) error: %v", tt.input, err)
				}
				if got != tt.want {
					t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
				}
			})
		}
	})

	t.Run("unknown status returns error", func(t *testing.T) {
		_, err := tasks.ParseStatus("paused")
		if !errors.Is(err, tasks.ErrInvalidStatus) {
			t.Errorf("ParseStatus(paused) error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		_, err := tasks.ParseStatus("")
		if !errors.Is(err, tasks.ErrInvalidStatus) {
			t.Errorf("ParseStatus('') error = %v, want ErrInvalidStatus", err)
		}
	})
}

func TestStatusUnmarshalJSON(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		var s tasks.Status
		if err := json.Unmarshal([]byte(`"processing"`), &s); err != nil {
			t.Fatalf("Unmarshal error: %v", err)
		}
		if s != tasks.StatusProcessing {
			t.Errorf("status = %q, want processing", s)
		}
	})

	t.Run("invalid status returns error", func(t *testing.T) {
		var s tasks.Status
		err := json.Unmarshal([]byte(`"paused"`), &s)
		if !errors.Is(err, tasks.ErrInvalidStatus) {
			t.Errorf("Unmarshal(paused) error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("non-string returns error", func(t *testing.T) {
		var s tasks.Status
		if err := json.Unmarshal([]byte(`7`), &s); err == nil {
			t.Error("Unmarshal(7) should return error")
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", tasks.ErrNotFound, http.StatusNotFound},
		{"duplicate", tasks.ErrDuplicate, http.StatusConflict},
		{"already running", tasks.ErrAlreadyRunning, http.StatusConflict},
		{"not completed", tasks.ErrNotCompleted, http.StatusConflict},
		{"routine running", tasks.ErrRoutineRunning, http.StatusConflict},
		{"invalid status", tasks.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid image", tasks.ErrInvalidImage, http.StatusBadRequest},
		{"missing file", tasks.ErrMissingFile, http.StatusBadRequest},
		{"file too large", tasks.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", tasks.ErrNotFound), http.StatusNotFound},
		{"wrapped already running", fmt.Errorf("start failed: %w", tasks.ErrAlreadyRunning), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tasks.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		f := tasks.FiltersFromQuery(url.Values{"status": {"completed"}})
		if f.Status == nil || *f.Status != tasks.StatusCompleted {
			t.Errorf("Status = %v, want completed", f.Status)
		}
	})

	t.Run("invalid status ignored", func(t *testing.T) {
		f := tasks.FiltersFromQuery(url.Values{"status": {"paused"}})
		if f.Status != nil {
			t.Errorf("Status = %v, want nil for invalid input", f.Status)
		}
	})

	t.Run("empty query yields nil fields", func(t *testing.T) {
		f := tasks.FiltersFromQuery(url.Values{})
		if f.Status != nil {
			t.Errorf("Status = %v, want nil", f.Status)
		}
	})
}
