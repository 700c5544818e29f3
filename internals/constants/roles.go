package constants

import "fmt"

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
	RoleStaff      = "staff"
)

// Error message templates for role guards
const (
	ErrOnlyAdminsCanAccess      = "Only admins may access %s."
	ErrOnlyInstructorsCanAccess = "Only instructors or admins may access %s."
	ErrOnlyStudentsCanAccess    = "Only students may access %s."
	ErrOnlyStaffCanAccess       = "Only staff or admins may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorInstructor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstructorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleInstructor,
		RoleStudent,
		RoleStaff,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
	}

	InstructorAndAbove = []string{
		RoleInstructor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
