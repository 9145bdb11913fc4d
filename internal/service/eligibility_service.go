package service

import (
	"fmt"

	"github.com/prodigyhire/backend/internal/model"
)

type EligibilityReason string

const (
	ReasonGPATooLow             EligibilityReason = "GPA_TOO_LOW"
	ReasonDepartmentNotEligible EligibilityReason = "DEPARTMENT_NOT_ELIGIBLE"
	ReasonBatchNotEligible      EligibilityReason = "BATCH_NOT_ELIGIBLE"
)

type EligibilityResult struct {
	Eligible bool
	Reason   EligibilityReason
	Message  string
}

// EvaluateEligibility decides whether a student may apply to a job. Rules
// run in a fixed order and the first failure wins: CGPA, then department,
// then batch. Empty department/batch lists mean unrestricted, and a
// department list containing "ALL" matches any department. Pure function,
// no error path.
func EvaluateEligibility(rules model.Eligibility, profile model.StudentProfile) EligibilityResult {
	if profile.CGPA < rules.MinCGPA {
		return EligibilityResult{
			Reason:  ReasonGPATooLow,
			Message: fmt.Sprintf("Minimum CGPA requirement is %g", rules.MinCGPA),
		}
	}

	if len(rules.Departments) > 0 && !containsDepartment(rules.Departments, profile.Department) {
		return EligibilityResult{
			Reason:  ReasonDepartmentNotEligible,
			Message: "Your department is not eligible for this job",
		}
	}

	if len(rules.Batches) > 0 && !containsBatch(rules.Batches, int64(profile.Batch)) {
		return EligibilityResult{
			Reason:  ReasonBatchNotEligible,
			Message: "Your batch is not eligible for this job",
		}
	}

	return EligibilityResult{Eligible: true}
}

func containsDepartment(departments []string, department string) bool {
	for _, d := range departments {
		if d == department || d == model.DepartmentAll {
			return true
		}
	}
	return false
}

func containsBatch(batches []int64, batch int64) bool {
	for _, b := range batches {
		if b == batch {
			return true
		}
	}
	return false
}
