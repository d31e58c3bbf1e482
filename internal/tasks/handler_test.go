package tasks_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lumiderm/lumiderm/internal/identity"
	"github.com/lumiderm/lumiderm/internal/routines"
	"github.com/lumiderm/lumiderm/internal/tasks"
	"github.com/lumiderm/lumiderm/pkg/pagination"
	"github.com/lumiderm/lumiderm/pkg/routes"
)

type fakeSystem struct {
	task  *tasks.Task
	page  *pagination.PageResult[tasks.Task]
	image *tasks.Image
	err   error

	lastUserID  string
	lastID      uuid.UUID
	lastCreate  tasks.CreateCommand
	lastIntake  routines.Intake
	lastFilters tasks.Filters
	deleted     bool
}

func (f *fakeSystem) Handler(int64) *tasks.Handler { return nil }

func (f *fakeSystem) List(_ context.Context, userID string, _ pagination.PageRequest, filters tasks.Filters) (*pagination.PageResult[tasks.Task], error) {
	f.lastUserID = userID
	f.lastFilters = filters
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeSystem) Find(_ context.Context, id uuid.UUID, userID string) (*tasks.Task, error) {
	f.lastID = id
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.task, nil
}

func (f *fakeSystem) Create(_ context.Context, cmd tasks.CreateCommand) (*tasks.Task, error) {
	f.lastCreate = cmd
	if f.err != nil {
		return nil, f.err
	}
	return f.task, nil
}

func (f *fakeSystem) Image(_ context.Context, id uuid.UUID, userID string) (*tasks.Image, error) {
	f.lastID = id
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.image, nil
}

func (f *fakeSystem) Delete(_ context.Context, id uuid.UUID, userID string) error {
	f.lastID = id
	f.lastUserID = userID
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	return nil
}

func (f *fakeSystem) Plan(_ context.Context, id uuid.UUID, userID string, intake routines.Intake) (*tasks.Task, error) {
	f.lastID = id
	f.lastUserID = userID
	f.lastIntake = intake
	if f.err != nil {
		return nil, f.err
	}
	return f.task, nil
}

const taskID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

func sampleTask() *tasks.Task {
	return &tasks.Task{
		ID:     uuid.MustParse(taskID),
		UserID: "user-1",
		Status: tasks.StatusQueued,
	}
}

const maxUploadSize = 1 << 20

func newMux(sys *fakeSystem) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := tasks.NewHandler(sys, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}, maxUploadSize)

	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())
	return mux
}

func authedRequest(method, path string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, path, body)
	ctx := identity.WithPrincipal(r.Context(), identity.Principal{ID: "user-1"})
	return r.WithContext(ctx)
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}

	if fileField != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+fileName+`"`)
		hdr.Set("Content-Type", contentType)
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHandlerList(t *testing.T) {
	t.Run("returns caller's tasks", func(t *testing.T) {
		page := pagination.NewPageResult([]tasks.Task{*sampleTask()}, 1, 1, 20)
		sys := &fakeSystem{page: &page}

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, authedRequest("GET", "/tasks?status=queued", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if sys.lastUserID != "user-1" {
			t.Errorf("user = %q, want user-1", sys.lastUserID)
		}
		if sys.lastFilters.Status == nil || *sys.lastFilters.Status != tasks.StatusQueued {
			t.Errorf("status filter = %v, want queued", sys.lastFilters.Status)
		}
	})

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newMux(&fakeSystem{}).ServeHTTP(rec, httptest.NewRequest("GET", "/tasks", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestHandlerStatuses(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(&fakeSystem{}).ServeHTTP(rec, httptest.NewRequest("GET", "/tasks/statuses", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var statuses []tasks.Status
	if err := json.NewDecoder(rec.Body).Decode(&statuses); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(statuses) != 4 {
		t.Errorf("len(statuses) = %d, want 4", len(statuses))
	}
}

func TestHandlerFind(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		sys := &fakeSystem{task: sampleTask()}

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, authedRequest("GET", "/tasks/"+taskID, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if sys.lastID.String() != taskID {
			t.Errorf("id = %s", sys.lastID)
		}
	})

	t.Run("invalid uuid yields 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newMux(&fakeSystem{}).ServeHTTP(rec, authedRequest("GET", "/tasks/not-a-uuid", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("missing task yields 404", func(t *testing.T) {
		sys := &fakeSystem{err: tasks.ErrNotFound}

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, authedRequest("GET", "/tasks/"+taskID, nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHandlerCreate(t *testing.T) {
	pngBytes := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

	t.Run("accepted with selfie and real age", func(t *testing.T) {
		sys := &fakeSystem{task: sampleTask()}

		body, contentType := multipartBody(t, map[string]string{"real_age": "34"}, "file", "selfie.png", "image/png", pngBytes)
		req := authedRequest("POST", "/tasks", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, req)

		if rec.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want 202", rec.Code)
		}
		if sys.lastCreate.UserID != "user-1" {
			t.Errorf("user = %q, want user-1", sys.lastCreate.UserID)
		}
		if sys.lastCreate.ContentType != "image/png" {
			t.Errorf("content type = %q, want image/png", sys.lastCreate.ContentType)
		}
		if sys.lastCreate.RealAge == nil || *sys.lastCreate.RealAge != 34 {
			t.Errorf("real age = %v, want 34", sys.lastCreate.RealAge)
		}
		if !bytes.Equal(sys.lastCreate.Data, pngBytes) {
			t.Error("payload bytes did not reach the system")
		}
	})

	t.Run("real age optional", func(t *testing.T) {
		sys := &fakeSystem{task: sampleTask()}

		body, contentType := multipartBody(t, nil, "file", "selfie.png", "image/png", pngBytes)
		req := authedRequest("POST", "/tasks", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, req)

		if rec.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want 202", rec.Code)
		}
		if sys.lastCreate.RealAge != nil {
			t.Errorf("real age = %v, want nil", sys.lastCreate.RealAge)
		}
	})

	t.Run("invalid real age yields 400", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"real_age": "young"}, "file", "selfie.png", "image/png", pngBytes)
		req := authedRequest("POST", "/tasks", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newMux(&fakeSystem{task: sampleTask()}).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("missing file yields 400", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"real_age": "34"}, "", "", "", nil)
		req := authedRequest("POST", "/tasks", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newMux(&fakeSystem{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("malformed multipart body yields 400", func(t *testing.T) {
		req := authedRequest("POST", "/tasks", strings.NewReader("not a multipart payload"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=deadbeef")

		rec := httptest.NewRecorder()
		newMux(&fakeSystem{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("oversized upload yields 413", func(t *testing.T) {
		body, contentType := multipartBody(t, nil, "file", "selfie.png", "image/png", bytes.Repeat([]byte{0xab}, int(maxUploadSize)+1024))
		req := authedRequest("POST", "/tasks", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newMux(&fakeSystem{}).ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status = %d, want 413", rec.Code)
		}
	})

	t.Run("invalid image type yields 400", func(t *testing.T) {
		sys := &fakeSystem{err: tasks.ErrInvalidImage}

		body, contentType := multipartBody(t, nil, "file", "selfie.gif", "image/gif", []byte{0x47, 0x49, 0x46})
		req := authedRequest("POST", "/tasks", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandlerImage(t *testing.T) {
	t.Run("streams selfie with content type", func(t *testing.T) {
		sys := &fakeSystem{image: &tasks.Image{
			Body:        io.NopCloser(strings.NewReader("selfie-bytes")),
			ContentType: "image/jpeg",
		}}

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, authedRequest("GET", "/tasks/"+taskID+"/image", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
			t.Errorf("content type = %q, want image/jpeg", ct)
		}
		if rec.Body.String() != "selfie-bytes" {
			t.Errorf("body = %q", rec.Body.String())
		}
	})

	t.Run("missing selfie yields 404", func(t *testing.T) {
		sys := &fakeSystem{err: tasks.ErrNotFound}

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, authedRequest("GET", "/tasks/"+taskID+"/image", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestHandlerRoutine(t *testing.T) {
	t.Run("accepted with poll path", func(t *testing.T) {
		sys := &fakeSystem{task: sampleTask()}

		body := `{"sensitivity":"high","budget_preference":"budget"}`
		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, authedRequest("POST", "/tasks/"+taskID+"/routine", strings.NewReader(body)))

		if rec.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want 202", rec.Code)
		}

		var resp tasks.PlanResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp.PollPath != "/tasks/"+taskID {
			t.Errorf("poll path = %q", resp.PollPath)
		}
		if sys.lastIntake.Sensitivity != "high" {
			t.Errorf("intake = %+v", sys.lastIntake)
		}
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newMux(&fakeSystem{}).ServeHTTP(rec, authedRequest("POST", "/tasks/"+taskID+"/routine", strings.NewReader("{")))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("incomplete analysis yields 409", func(t *testing.T) {
		sys := &fakeSystem{err: tasks.ErrNotCompleted}

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, authedRequest("POST", "/tasks/"+taskID+"/routine", strings.NewReader("{}")))

		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})
}

func TestHandlerDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		sys := &fakeSystem{}

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, authedRequest("DELETE", "/tasks/"+taskID, nil))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
		if !sys.deleted {
			t.Error("system Delete was not called")
		}
		if sys.lastUserID != "user-1" {
			t.Errorf("user = %q, want user-1", sys.lastUserID)
		}
	})

	t.Run("missing task yields 404", func(t *testing.T) {
		sys := &fakeSystem{err: tasks.ErrNotFound}

		rec := httptest.NewRecorder()
		newMux(sys).ServeHTTP(rec, authedRequest("DELETE", "/tasks/"+taskID, nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
