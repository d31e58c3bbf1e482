package tasks

import (
	"database/sql"
	"net/url"

	"github.com/lumiderm/lumiderm/pkg/query"
	"github.com/lumiderm/lumiderm/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "tasks", "t").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("status", "Status").
	Project("stage", "Stage").
	Project("result", "Result").
	Project("error", "Error").
	Project("real_age", "RealAge").
	Project("intake", "Intake").
	Project("routine", "Routine").
	Project("image_key", "ImageKey").
	Project("content_type", "ContentType").
	Project("progress_seq", "ProgressSeq").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

// newest first
var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for task queries.
// Nil fields are ignored.
type Filters struct {
	Status *Status `json:"status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Status", f.Status)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		if status, err := ParseStatus(s); err == nil {
			f.Status = &status
		}
	}

	return f
}

func scanTask(s repository.Scanner) (Task, error) {
	var (
		t       Task
		stage   sql.NullString
		result  []byte
		errMsg  sql.NullString
		realAge sql.NullInt32
		intake  []byte
		routine []byte
	)

	err := s.Scan(
		&t.ID,
		&t.UserID,
		&t.Status,
		&stage,
		&result,
		&errMsg,
		&realAge,
		&intake,
		&routine,
		&t.ImageKey,
		&t.ContentType,
		&t.ProgressSeq,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return Task{}, err
	}

	if stage.Valid {
		t.Stage = &stage.String
	}
	if errMsg.Valid {
		t.Error = &errMsg.String
	}
	if realAge.Valid {
		age := int(realAge.Int32)
		t.RealAge = &age
	}
	t.Result = result
	t.Intake = intake
	t.Routine = routine

	return t, nil
}
