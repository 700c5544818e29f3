package database

import (
	"log"

	academicModel "campushub_backend/internals/features/academics/model"
	admissionModel "campushub_backend/internals/features/admissions/model"
	courseModel "campushub_backend/internals/features/courses/course/model"
	progressModel "campushub_backend/internals/features/courses/progress/model"
	examModel "campushub_backend/internals/features/exams/model"
	feeModel "campushub_backend/internals/features/fees/model"
	paymentModel "campushub_backend/internals/features/payments/model"
	peopleModel "campushub_backend/internals/features/people/model"
	authModel "campushub_backend/internals/features/users/auth/model"
	userModel "campushub_backend/internals/features/users/user/model"
	visitorModel "campushub_backend/internals/features/visitors/model"
)

// MigrateAll runs AutoMigrate for every table. Ordering matters only for
// readability; GORM resolves references by name.
func MigrateAll() {
	err := DB.AutoMigrate(
		// users & auth
		&userModel.UserModel{},
		&userModel.UserProfileModel{},
		&userModel.UserCapabilityModel{},
		&authModel.OtpModel{},
		&authModel.TokenBlacklist{},

		// catalog
		&courseModel.CourseModel{},
		&courseModel.SectionModel{},
		&courseModel.SubsectionModel{},
		&progressModel.ProgressModel{},

		// payments
		&paymentModel.PaymentModel{},
		&paymentModel.AdmissionAuditModel{},

		// exams
		&examModel.ExamSessionModel{},
		&examModel.ResultModel{},

		// admissions
		&admissionModel.EnquiryModel{},
		&admissionModel.RegisteredStudentModel{},
		&admissionModel.EnrolledStudentModel{},

		// academics reference data
		&academicModel.DepartmentModel{},
		&academicModel.SchoolModel{},
		&academicModel.SessionModel{},
		&academicModel.SubjectModel{},
		&academicModel.BatchModel{},
		&academicModel.UGPGCourseModel{},
		&academicModel.LanguageModel{},
		&academicModel.TimetableModel{},

		// people & visitors
		&peopleModel.GuideModel{},
		&peopleModel.ExternalExpertModel{},
		&peopleModel.RACMemberModel{},
		&visitorModel.MeetingTypeModel{},
		&visitorModel.VisitPurposeModel{},
		&visitorModel.VisitorLogModel{},

		// fees
		&feeModel.FeeTypeModel{},
		&feeModel.FeeAssignmentModel{},
		&feeModel.FeePaymentModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] ✅ Database migration complete")
}
