package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "campushub_backend/internals/features/courses/course/model"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{gorm.ErrDuplicatedKey, true},
		{errors.New(`ERROR: duplicate key value violates unique constraint "idx_courses_title" (SQLSTATE 23505)`), true},
		{errors.New("connection refused"), false},
		{gorm.ErrRecordNotFound, false},
	}
	for _, tc := range cases {
		if got := isUniqueViolation(tc.err); got != tc.want {
			t.Errorf("isUniqueViolation(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

// stmtRecorder collects every SQL statement gorm builds, so a dry-run
// session can be inspected without a database.
type stmtRecorder struct {
	stmts *[]string
}

func (r stmtRecorder) LogMode(logger.LogLevel) logger.Interface      { return r }
func (r stmtRecorder) Info(context.Context, string, ...interface{})  {}
func (r stmtRecorder) Warn(context.Context, string, ...interface{})  {}
func (r stmtRecorder) Error(context.Context, string, ...interface{}) {}
func (r stmtRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	*r.stmts = append(*r.stmts, sql)
}

func dryRunDB(t *testing.T, stmts *[]string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:               stmtRecorder{stmts: stmts},
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestDeleteCourseCascadeCleansProgressPointers(t *testing.T) {
	var stmts []string
	db := dryRunDB(t, &stmts)

	course := &courseModel.CourseModel{ID: uuid.New(), Title: "Linear Algebra"}
	if err := deleteCourseCascade(db, course); err != nil {
		t.Fatalf("deleteCourseCascade: %v", err)
	}

	indexOf := func(substr string) int {
		for i, s := range stmts {
			if strings.Contains(s, substr) {
				return i
			}
		}
		return -1
	}

	progressPtr := indexOf("array_remove(users.progress_ids, course_progress.id::text)")
	if progressPtr < 0 {
		t.Fatalf("no statement removes progress ids from users, got:\n%s", strings.Join(stmts, "\n"))
	}
	progressDel := indexOf(`"course_progress"`)
	if progressDel < 0 {
		t.Fatal("no statement touches course_progress rows")
	}
	// Pointers must be cleaned while the progress rows still exist.
	if progressPtr > progressDel {
		t.Errorf("progress_ids cleanup (stmt %d) runs after the progress delete (stmt %d)", progressPtr, progressDel)
	}

	if indexOf("array_remove(course_ids") < 0 {
		t.Error("no statement unenrolls users from the course")
	}
	if indexOf(`"course_subsections"`) < 0 || indexOf(`"course_sections"`) < 0 {
		t.Error("content tree is not removed")
	}
	if indexOf(`"courses"`) < 0 {
		t.Error("course row itself is not removed")
	}
}
