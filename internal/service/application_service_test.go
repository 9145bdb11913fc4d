package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/prodigyhire/backend/internal/apperror"
	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/model"
)

func assertCode(t *testing.T, err error, code apperror.Code) *apperror.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var e *apperror.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *apperror.Error, got %T: %v", err, err)
	}
	if e.Code != code {
		t.Fatalf("error code = %s, want %s", e.Code, code)
	}
	return e
}

type applicationFixture struct {
	svc      ApplicationService
	appRepo  *mockApplicationRepo
	jobRepo  *mockJobRepo
	userRepo *mockUserRepo
	notifier *mockNotifier
}

func newApplicationFixture() *applicationFixture {
	f := &applicationFixture{
		appRepo:  newMockApplicationRepo(),
		jobRepo:  newMockJobRepo(),
		userRepo: newMockUserRepo(),
		notifier: &mockNotifier{},
	}
	f.svc = NewApplicationService(f.appRepo, f.jobRepo, f.userRepo, f.notifier)

	f.jobRepo.add(&model.Job{
		ID:        1,
		CompanyID: 10,
		Title:     "Backend Engineer",
		JobType:   "Full-Time",
		Location:  "Bangalore",
		Deadline:  time.Now().Add(48 * time.Hour),
		IsActive:  true,
		Eligibility: model.Eligibility{
			MinCGPA:     7.5,
			Departments: pq.StringArray{"CSE", "IT"},
			Batches:     pq.Int64Array{2025},
		},
	})
	f.userRepo.users[2] = &model.User{
		ID:   2,
		Name: "Asha Verma",
		Role: model.RoleStudent,
		StudentProfile: model.StudentProfile{
			Department: "CSE",
			Batch:      2025,
			CGPA:       8.2,
			ResumeURL:  "https://cdn.example.com/resumes/asha.pdf",
		},
	}
	return f
}

func TestApplySuccess(t *testing.T) {
	f := newApplicationFixture()

	app, err := f.svc.Apply(2, 1, dto.ApplyDTO{CoverLetter: "Very interested"})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	if app.Status != model.StatusApplied {
		t.Errorf("status = %q, want %q", app.Status, model.StatusApplied)
	}
	if len(app.Timeline) != 1 || app.Timeline[0].Note != "Application submitted" {
		t.Errorf("timeline = %+v, want one 'Application submitted' entry", app.Timeline)
	}
	if app.ResumeURL != "https://cdn.example.com/resumes/asha.pdf" {
		t.Errorf("resume URL not copied from profile: %q", app.ResumeURL)
	}
	if got := f.jobRepo.applicationIncrements[1]; got != 1 {
		t.Errorf("applications counter incremented %d times, want 1", got)
	}

	if len(f.notifier.calls) != 1 {
		t.Fatalf("got %d notifications, want 1", len(f.notifier.calls))
	}
	call := f.notifier.calls[0]
	if call.userID != 10 {
		t.Errorf("notified user %d, want company 10", call.userID)
	}
	if call.message != "Asha Verma applied for Backend Engineer" {
		t.Errorf("notification message = %q", call.message)
	}
}

func TestApplyGPATooLow(t *testing.T) {
	f := newApplicationFixture()
	f.userRepo.users[2].StudentProfile.CGPA = 6.0

	_, err := f.svc.Apply(2, 1, dto.ApplyDTO{})
	e := assertCode(t, err, apperror.CodeNotEligible)
	if e.Reason != string(ReasonGPATooLow) {
		t.Errorf("reason = %q, want %q", e.Reason, ReasonGPATooLow)
	}
	if e.Message != "Minimum CGPA requirement is 7.5" {
		t.Errorf("message = %q", e.Message)
	}
	if len(f.appRepo.apps) != 0 {
		t.Error("application was created despite failed eligibility")
	}
}

func TestApplyDeadlinePassed(t *testing.T) {
	f := newApplicationFixture()
	f.jobRepo.jobs[1].Deadline = time.Now().Add(-time.Hour)

	_, err := f.svc.Apply(2, 1, dto.ApplyDTO{})
	assertCode(t, err, apperror.CodeDeadlinePassed)
}

func TestApplyInactiveJob(t *testing.T) {
	f := newApplicationFixture()
	f.jobRepo.jobs[1].IsActive = false

	_, err := f.svc.Apply(2, 1, dto.ApplyDTO{})
	assertCode(t, err, apperror.CodeDeadlinePassed)
}

func TestApplyResumeMissing(t *testing.T) {
	f := newApplicationFixture()
	f.userRepo.users[2].StudentProfile.ResumeURL = ""

	_, err := f.svc.Apply(2, 1, dto.ApplyDTO{})
	assertCode(t, err, apperror.CodeResumeMissing)
}

func TestApplyJobNotFound(t *testing.T) {
	f := newApplicationFixture()

	_, err := f.svc.Apply(2, 99, dto.ApplyDTO{})
	assertCode(t, err, apperror.CodeNotFound)
}

func TestApplyDuplicate(t *testing.T) {
	f := newApplicationFixture()

	if _, err := f.svc.Apply(2, 1, dto.ApplyDTO{}); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	_, err := f.svc.Apply(2, 1, dto.ApplyDTO{})
	assertCode(t, err, apperror.CodeDuplicateApplication)

	if got := f.jobRepo.applicationIncrements[1]; got != 1 {
		t.Errorf("applications counter incremented %d times, want 1", got)
	}
}

func seedApplication(f *applicationFixture, id, jobID, studentID uint) *model.Application {
	app := &model.Application{
		ID:        id,
		JobID:     jobID,
		StudentID: studentID,
		Job:       *f.jobRepo.jobs[jobID],
		ResumeURL: "https://cdn.example.com/resumes/asha.pdf",
		Status:    model.StatusApplied,
	}
	f.appRepo.add(app)
	return app
}

func TestUpdateStatusForbidden(t *testing.T) {
	f := newApplicationFixture()
	seedApplication(f, 1, 1, 2)

	_, err := f.svc.UpdateStatus(99, 1, dto.StatusUpdateDTO{Status: model.StatusShortlisted})
	assertCode(t, err, apperror.CodeForbidden)

	if f.appRepo.apps[1].Status != model.StatusApplied {
		t.Error("status changed despite forbidden update")
	}
}

func TestUpdateStatusAppendsTimelineAndNotifies(t *testing.T) {
	f := newApplicationFixture()
	seedApplication(f, 1, 1, 2)

	app, err := f.svc.UpdateStatus(10, 1, dto.StatusUpdateDTO{
		Status: model.StatusSelected,
		Note:   "Offer rolled out",
	})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if app.Status != model.StatusSelected {
		t.Errorf("status = %q, want %q", app.Status, model.StatusSelected)
	}
	if len(f.appRepo.timeline) != 1 {
		t.Fatalf("got %d timeline entries, want 1", len(f.appRepo.timeline))
	}
	entry := f.appRepo.timeline[0]
	if entry.Status != model.StatusSelected || entry.Note != "Offer rolled out" {
		t.Errorf("timeline entry = %+v", entry)
	}

	if len(f.notifier.calls) != 1 {
		t.Fatalf("got %d notifications, want 1", len(f.notifier.calls))
	}
	call := f.notifier.calls[0]
	if call.userID != 2 {
		t.Errorf("notified user %d, want student 2", call.userID)
	}
	want := "Backend Engineer: Congratulations! You have been selected"
	if call.message != want {
		t.Errorf("notification message = %q, want %q", call.message, want)
	}
}

func TestUpdateStatusNoteDefaultsToStatus(t *testing.T) {
	f := newApplicationFixture()
	seedApplication(f, 1, 1, 2)

	if _, err := f.svc.UpdateStatus(10, 1, dto.StatusUpdateDTO{Status: model.StatusShortlisted}); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if note := f.appRepo.timeline[0].Note; note != model.StatusShortlisted {
		t.Errorf("note = %q, want status fallback %q", note, model.StatusShortlisted)
	}
}

func TestUpdateStatusUnmappedStatusIsSilent(t *testing.T) {
	f := newApplicationFixture()
	seedApplication(f, 1, 1, 2)

	if _, err := f.svc.UpdateStatus(10, 1, dto.StatusUpdateDTO{Status: model.StatusTestCompleted}); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if len(f.notifier.calls) != 0 {
		t.Errorf("got %d notifications for an unmapped status, want 0", len(f.notifier.calls))
	}
	if len(f.appRepo.timeline) != 1 {
		t.Errorf("got %d timeline entries, want 1", len(f.appRepo.timeline))
	}
}

func TestUpdateStatusInterviewFields(t *testing.T) {
	f := newApplicationFixture()
	seedApplication(f, 1, 1, 2)

	date := time.Now().Add(72 * time.Hour)
	mode := "Online"
	link := "https://meet.example.com/abc"
	app, err := f.svc.UpdateStatus(10, 1, dto.StatusUpdateDTO{
		Status:        model.StatusInterviewScheduled,
		InterviewDate: &date,
		InterviewMode: &mode,
		InterviewLink: &link,
	})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if app.InterviewDate == nil || !app.InterviewDate.Equal(date) {
		t.Error("interview date not applied")
	}
	if app.InterviewMode == nil || *app.InterviewMode != mode {
		t.Error("interview mode not applied")
	}
	if app.InterviewLink == nil || *app.InterviewLink != link {
		t.Error("interview link not applied")
	}
}

func TestBulkUpdateStatusOwnershipPreCheck(t *testing.T) {
	f := newApplicationFixture()
	f.jobRepo.add(&model.Job{
		ID:        2,
		CompanyID: 77,
		Title:     "Data Analyst",
		Deadline:  time.Now().Add(24 * time.Hour),
		IsActive:  true,
	})
	seedApplication(f, 1, 1, 2)
	seedApplication(f, 2, 2, 3)

	_, err := f.svc.BulkUpdateStatus(10, dto.BulkUpdateDTO{
		ApplicationIDs: []uint{1, 2},
		Status:         model.StatusShortlisted,
	})
	assertCode(t, err, apperror.CodeForbidden)

	// Nothing may change when any item fails the ownership check.
	if f.appRepo.apps[1].Status != model.StatusApplied {
		t.Error("owned application was updated despite the failed pre-check")
	}
	if len(f.appRepo.timeline) != 0 {
		t.Errorf("got %d timeline entries, want 0", len(f.appRepo.timeline))
	}
}

func TestBulkUpdateStatusUpdatesAll(t *testing.T) {
	f := newApplicationFixture()
	seedApplication(f, 1, 1, 2)
	seedApplication(f, 2, 1, 3)

	count, err := f.svc.BulkUpdateStatus(10, dto.BulkUpdateDTO{
		ApplicationIDs: []uint{1, 2},
		Status:         model.StatusShortlisted,
	})
	if err != nil {
		t.Fatalf("BulkUpdateStatus returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	for _, id := range []uint{1, 2} {
		if f.appRepo.apps[id].Status != model.StatusShortlisted {
			t.Errorf("application %d status = %q", id, f.appRepo.apps[id].Status)
		}
	}
	if len(f.appRepo.timeline) != 2 {
		t.Fatalf("got %d timeline entries, want 2", len(f.appRepo.timeline))
	}
	if note := f.appRepo.timeline[0].Note; note != "Bulk update to shortlisted" {
		t.Errorf("note = %q, want %q", note, "Bulk update to shortlisted")
	}
}
