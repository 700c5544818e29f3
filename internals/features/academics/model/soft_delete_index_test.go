package model

import (
	"reflect"
	"strings"
	"testing"

	"gorm.io/gorm"

	admissionModel "campushub_backend/internals/features/admissions/model"
	courseModel "campushub_backend/internals/features/courses/course/model"
	examModel "campushub_backend/internals/features/exams/model"
	feeModel "campushub_backend/internals/features/fees/model"
	peopleModel "campushub_backend/internals/features/people/model"
	userModel "campushub_backend/internals/features/users/user/model"
	visitorModel "campushub_backend/internals/features/visitors/model"
)

// A soft-deleted row must not hold its unique key hostage: deleting a
// Department named "Physics" and re-creating it has to work. That only
// holds when every unique index on a soft-deleted table is partial on
// live rows, so this walks all such models and checks each uniqueIndex
// carries the deleted_at IS NULL predicate.
func TestUniqueIndexesIgnoreSoftDeletedRows(t *testing.T) {
	models := []interface{}{
		DepartmentModel{},
		SchoolModel{},
		SessionModel{},
		SubjectModel{},
		BatchModel{},
		UGPGCourseModel{},
		LanguageModel{},
		TimetableModel{},
		examModel.ExamSessionModel{},
		examModel.ResultModel{},
		courseModel.CourseModel{},
		userModel.UserModel{},
		admissionModel.EnquiryModel{},
		admissionModel.RegisteredStudentModel{},
		admissionModel.EnrolledStudentModel{},
		peopleModel.GuideModel{},
		peopleModel.ExternalExpertModel{},
		peopleModel.RACMemberModel{},
		visitorModel.MeetingTypeModel{},
		visitorModel.VisitPurposeModel{},
		feeModel.FeeTypeModel{},
		feeModel.FeeAssignmentModel{},
		feeModel.FeePaymentModel{},
	}

	deletedAtType := reflect.TypeOf(gorm.DeletedAt{})
	for _, m := range models {
		rt := reflect.TypeOf(m)

		softDeleted := false
		for i := 0; i < rt.NumField(); i++ {
			if rt.Field(i).Type == deletedAtType {
				softDeleted = true
				break
			}
		}
		if !softDeleted {
			t.Errorf("%s: expected a gorm.DeletedAt field", rt.Name())
			continue
		}

		// index name -> any field of it declares the partial predicate
		partial := map[string]bool{}
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			for _, setting := range strings.Split(field.Tag.Get("gorm"), ";") {
				if !strings.HasPrefix(setting, "uniqueIndex") {
					continue
				}
				name := field.Name // unnamed index, per-field
				opts := strings.TrimPrefix(setting, "uniqueIndex")
				opts = strings.TrimPrefix(opts, ":")
				if parts := strings.SplitN(opts, ",", 2); parts[0] != "" {
					name = parts[0]
				}
				if strings.Contains(setting, "where:deleted_at IS NULL") {
					partial[name] = true
				} else if _, seen := partial[name]; !seen {
					partial[name] = false
				}
			}
		}
		for name, ok := range partial {
			if !ok {
				t.Errorf("%s: unique index %s is not partial on deleted_at IS NULL; a soft-deleted row would block re-creation", rt.Name(), name)
			}
		}
	}
}
