package service

import (
	"testing"
	"time"

	"github.com/prodigyhire/backend/internal/apperror"
	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/model"
)

type jobFixture struct {
	svc          JobService
	jobRepo      *mockJobRepo
	savedJobRepo *mockSavedJobRepo
}

func newJobFixture() *jobFixture {
	f := &jobFixture{
		jobRepo:      newMockJobRepo(),
		savedJobRepo: newMockSavedJobRepo(),
	}
	f.svc = NewJobService(f.jobRepo, f.savedJobRepo)

	f.jobRepo.add(&model.Job{
		ID:        1,
		CompanyID: 10,
		Title:     "Backend Engineer",
		JobType:   "Full-Time",
		Location:  "Bangalore",
		Deadline:  time.Now().Add(48 * time.Hour),
		IsActive:  true,
	})
	return f
}

func TestCreateJobDeadlineInPast(t *testing.T) {
	f := newJobFixture()

	_, err := f.svc.Create(10, dto.JobCreateDTO{
		Title:       "SDE Intern",
		Description: "Six month internship with the platform team",
		JobType:     "Internship",
		Location:    "Remote",
		Deadline:    time.Now().Add(-time.Hour),
	})
	assertCode(t, err, apperror.CodeValidation)
}

func TestCreateJobDefaultsWorkMode(t *testing.T) {
	f := newJobFixture()

	job, err := f.svc.Create(10, dto.JobCreateDTO{
		Title:       "SDE Intern",
		Description: "Six month internship with the platform team",
		JobType:     "Internship",
		Location:    "Remote",
		Deadline:    time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if job.WorkMode != "On-site" {
		t.Errorf("work mode = %q, want default On-site", job.WorkMode)
	}
	if !job.IsActive {
		t.Error("new job should be active")
	}
}

func TestGetJobIncrementsViews(t *testing.T) {
	f := newJobFixture()

	job, err := f.svc.Get(1)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got := f.jobRepo.viewIncrements[1]; got != 1 {
		t.Errorf("views incremented %d times, want 1", got)
	}
	if job.Views != 1 {
		t.Errorf("response views = %d, want 1", job.Views)
	}
}

func TestUpdateJobForbidden(t *testing.T) {
	f := newJobFixture()
	title := "Renamed"

	_, err := f.svc.Update(99, 1, dto.JobUpdateDTO{Title: &title})
	assertCode(t, err, apperror.CodeForbidden)
}

func TestUpdateJobPartial(t *testing.T) {
	f := newJobFixture()
	title := "Platform Engineer"

	job, err := f.svc.Update(10, 1, dto.JobUpdateDTO{Title: &title})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if job.Title != "Platform Engineer" {
		t.Errorf("title = %q", job.Title)
	}
	if job.Location != "Bangalore" {
		t.Errorf("location changed to %q on a partial update", job.Location)
	}
}

func TestDeleteJobAdminOverride(t *testing.T) {
	f := newJobFixture()

	if err := f.svc.Delete(99, model.RoleCompany, 1); err == nil {
		t.Fatal("foreign company delete should fail")
	}
	if err := f.svc.Delete(99, model.RoleAdmin, 1); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, ok := f.jobRepo.jobs[1]; ok {
		t.Error("job still present after admin delete")
	}
}

func TestToggleSave(t *testing.T) {
	f := newJobFixture()

	result, err := f.svc.ToggleSave(2, 1)
	if err != nil {
		t.Fatalf("first toggle returned error: %v", err)
	}
	if !result.Saved {
		t.Error("first toggle should save")
	}

	result, err = f.svc.ToggleSave(2, 1)
	if err != nil {
		t.Fatalf("second toggle returned error: %v", err)
	}
	if result.Saved {
		t.Error("second toggle should unsave")
	}
	if len(f.savedJobRepo.saved) != 0 {
		t.Errorf("bookmark rows = %d, want 0", len(f.savedJobRepo.saved))
	}
}

func TestToggleSaveMissingJob(t *testing.T) {
	f := newJobFixture()

	_, err := f.svc.ToggleSave(2, 99)
	assertCode(t, err, apperror.CodeNotFound)
}
