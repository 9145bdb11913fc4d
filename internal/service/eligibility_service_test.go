package service

import (
	"testing"

	"github.com/lib/pq"

	"github.com/prodigyhire/backend/internal/model"
)

func TestEvaluateEligibility(t *testing.T) {
	rules := model.Eligibility{
		MinCGPA:     7.5,
		Departments: pq.StringArray{"CSE", "IT"},
		Batches:     pq.Int64Array{2025},
	}

	tests := []struct {
		name       string
		rules      model.Eligibility
		profile    model.StudentProfile
		wantOK     bool
		wantReason EligibilityReason
	}{
		{
			name:    "all rules satisfied",
			rules:   rules,
			profile: model.StudentProfile{CGPA: 8.2, Department: "CSE", Batch: 2025},
			wantOK:  true,
		},
		{
			name:    "cgpa exactly at minimum",
			rules:   rules,
			profile: model.StudentProfile{CGPA: 7.5, Department: "IT", Batch: 2025},
			wantOK:  true,
		},
		{
			name:       "cgpa below minimum",
			rules:      rules,
			profile:    model.StudentProfile{CGPA: 6.0, Department: "CSE", Batch: 2025},
			wantReason: ReasonGPATooLow,
		},
		{
			name:       "cgpa checked before department",
			rules:      rules,
			profile:    model.StudentProfile{CGPA: 6.0, Department: "MECH", Batch: 2024},
			wantReason: ReasonGPATooLow,
		},
		{
			name:       "department not in list",
			rules:      rules,
			profile:    model.StudentProfile{CGPA: 9.0, Department: "ECE", Batch: 2025},
			wantReason: ReasonDepartmentNotEligible,
		},
		{
			name:       "batch not in list",
			rules:      rules,
			profile:    model.StudentProfile{CGPA: 9.0, Department: "CSE", Batch: 2024},
			wantReason: ReasonBatchNotEligible,
		},
		{
			name: "ALL sentinel matches any department",
			rules: model.Eligibility{
				MinCGPA:     7.5,
				Departments: pq.StringArray{model.DepartmentAll},
				Batches:     pq.Int64Array{2025},
			},
			profile: model.StudentProfile{CGPA: 8.0, Department: "ECE", Batch: 2025},
			wantOK:  true,
		},
		{
			name: "empty department list is unrestricted",
			rules: model.Eligibility{
				MinCGPA: 7.5,
				Batches: pq.Int64Array{2025},
			},
			profile: model.StudentProfile{CGPA: 8.0, Department: "CIVIL", Batch: 2025},
			wantOK:  true,
		},
		{
			name: "empty batch list is unrestricted",
			rules: model.Eligibility{
				MinCGPA:     7.5,
				Departments: pq.StringArray{"CSE"},
			},
			profile: model.StudentProfile{CGPA: 8.0, Department: "CSE", Batch: 2023},
			wantOK:  true,
		},
		{
			name:    "zero rules admit everyone",
			rules:   model.Eligibility{},
			profile: model.StudentProfile{CGPA: 0, Department: "OTHER", Batch: 2020},
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateEligibility(tt.rules, tt.profile)
			if result.Eligible != tt.wantOK {
				t.Fatalf("Eligible = %v, want %v (reason %q)", result.Eligible, tt.wantOK, result.Reason)
			}
			if !tt.wantOK {
				if result.Reason != tt.wantReason {
					t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
				}
				if result.Message == "" {
					t.Error("expected a non-empty message for an ineligible student")
				}
			}
		})
	}
}

func TestEvaluateEligibilityGPAMessage(t *testing.T) {
	rules := model.Eligibility{MinCGPA: 7.5}
	result := EvaluateEligibility(rules, model.StudentProfile{CGPA: 6.9})

	want := "Minimum CGPA requirement is 7.5"
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}
