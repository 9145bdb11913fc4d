package service

import (
	"gorm.io/gorm"

	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/model"
	"github.com/prodigyhire/backend/internal/repository"
)

// Map-backed repository fakes. They reproduce the storage contracts the
// services rely on: not-found as gorm.ErrRecordNotFound and unique-index
// violations as gorm.ErrDuplicatedKey.

type mockJobRepo struct {
	jobs                  map[uint]*model.Job
	nextID                uint
	applicationIncrements map[uint]int
	viewIncrements        map[uint]int
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{
		jobs:                  make(map[uint]*model.Job),
		nextID:                1,
		applicationIncrements: make(map[uint]int),
		viewIncrements:        make(map[uint]int),
	}
}

func (r *mockJobRepo) add(job *model.Job) {
	if job.ID == 0 {
		job.ID = r.nextID
	}
	if job.ID >= r.nextID {
		r.nextID = job.ID + 1
	}
	r.jobs[job.ID] = job
}

func (r *mockJobRepo) Create(job *model.Job) error {
	r.add(job)
	return nil
}

func (r *mockJobRepo) FindByID(id uint) (*model.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return job, nil
}

func (r *mockJobRepo) FindByIDWithCompany(id uint) (*model.Job, error) {
	return r.FindByID(id)
}

func (r *mockJobRepo) FindByCompany(companyID uint) ([]model.Job, error) {
	var jobs []model.Job
	for _, job := range r.jobs {
		if job.CompanyID == companyID {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (r *mockJobRepo) List(filter repository.JobFilter, offset, limit int) ([]model.Job, int64, error) {
	var jobs []model.Job
	for _, job := range r.jobs {
		if job.IsActive {
			jobs = append(jobs, *job)
		}
	}
	return jobs, int64(len(jobs)), nil
}

func (r *mockJobRepo) Update(job *model.Job) error {
	r.jobs[job.ID] = job
	return nil
}

func (r *mockJobRepo) Delete(id uint) error {
	delete(r.jobs, id)
	return nil
}

func (r *mockJobRepo) IncrementApplications(id uint) error {
	r.applicationIncrements[id]++
	return nil
}

func (r *mockJobRepo) IncrementViews(id uint) error {
	r.viewIncrements[id]++
	return nil
}

func (r *mockJobRepo) SetAptitudeTest(jobID, testID uint) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	id := testID
	job.AptitudeTestID = &id
	return nil
}

type mockUserRepo struct {
	users map[uint]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User)}
}

func (r *mockUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type mockApplicationRepo struct {
	apps     map[uint]*model.Application
	nextID   uint
	timeline []model.TimelineEntry
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: make(map[uint]*model.Application), nextID: 1}
}

func (r *mockApplicationRepo) add(app *model.Application) {
	if app.ID == 0 {
		app.ID = r.nextID
	}
	if app.ID >= r.nextID {
		r.nextID = app.ID + 1
	}
	r.apps[app.ID] = app
}

func (r *mockApplicationRepo) Create(app *model.Application) error {
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.StudentID == app.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.add(app)
	return nil
}

func (r *mockApplicationRepo) FindByID(id uint) (*model.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return app, nil
}

func (r *mockApplicationRepo) FindByIDWithJob(id uint) (*model.Application, error) {
	return r.FindByID(id)
}

func (r *mockApplicationRepo) FindByJobAndStudent(jobID, studentID uint) (*model.Application, error) {
	for _, app := range r.apps {
		if app.JobID == jobID && app.StudentID == studentID {
			return app, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockApplicationRepo) FindByStudent(studentID uint) ([]model.Application, error) {
	var apps []model.Application
	for _, app := range r.apps {
		if app.StudentID == studentID {
			apps = append(apps, *app)
		}
	}
	return apps, nil
}

func (r *mockApplicationRepo) FindByJob(jobID uint, status string, offset, limit int) ([]model.Application, int64, error) {
	var apps []model.Application
	for _, app := range r.apps {
		if app.JobID != jobID {
			continue
		}
		if status != "" && app.Status != status {
			continue
		}
		apps = append(apps, *app)
	}
	return apps, int64(len(apps)), nil
}

func (r *mockApplicationRepo) FindByIDsWithJob(ids []uint) ([]model.Application, error) {
	var apps []model.Application
	for _, id := range ids {
		if app, ok := r.apps[id]; ok {
			apps = append(apps, *app)
		}
	}
	return apps, nil
}

func (r *mockApplicationRepo) FindByJobIDs(jobIDs []uint) ([]model.Application, error) {
	var apps []model.Application
	for _, jobID := range jobIDs {
		for _, app := range r.apps {
			if app.JobID == jobID {
				apps = append(apps, *app)
			}
		}
	}
	return apps, nil
}

func (r *mockApplicationRepo) FindPendingTestApplications(studentID uint) ([]model.Application, error) {
	var apps []model.Application
	for _, app := range r.apps {
		if app.StudentID != studentID || app.TestTaken {
			continue
		}
		if app.Status == model.StatusShortlisted || app.Status == model.StatusTestScheduled {
			apps = append(apps, *app)
		}
	}
	return apps, nil
}

func (r *mockApplicationRepo) Save(app *model.Application) error {
	stored, ok := r.apps[app.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	*stored = *app
	return nil
}

func (r *mockApplicationRepo) AppendTimeline(entry *model.TimelineEntry) error {
	r.timeline = append(r.timeline, *entry)
	return nil
}

type mockAptitudeTestRepo struct {
	tests             map[uint]*model.AptitudeTest
	nextID            uint
	attemptIncrements map[uint]int
}

func newMockAptitudeTestRepo() *mockAptitudeTestRepo {
	return &mockAptitudeTestRepo{
		tests:             make(map[uint]*model.AptitudeTest),
		nextID:            1,
		attemptIncrements: make(map[uint]int),
	}
}

func (r *mockAptitudeTestRepo) add(test *model.AptitudeTest) {
	if test.ID == 0 {
		test.ID = r.nextID
	}
	if test.ID >= r.nextID {
		r.nextID = test.ID + 1
	}
	r.tests[test.ID] = test
}

func (r *mockAptitudeTestRepo) Create(test *model.AptitudeTest) error {
	r.add(test)
	return nil
}

func (r *mockAptitudeTestRepo) FindByID(id uint) (*model.AptitudeTest, error) {
	test, ok := r.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return test, nil
}

func (r *mockAptitudeTestRepo) FindByCompany(companyID uint) ([]model.AptitudeTest, error) {
	var tests []model.AptitudeTest
	for _, test := range r.tests {
		if test.CompanyID == companyID {
			tests = append(tests, *test)
		}
	}
	return tests, nil
}

func (r *mockAptitudeTestRepo) Delete(id uint) error {
	delete(r.tests, id)
	return nil
}

func (r *mockAptitudeTestRepo) IncrementAttempts(id uint) error {
	r.attemptIncrements[id]++
	return nil
}

type mockTestResultRepo struct {
	results map[uint]*model.TestResult
	nextID  uint
}

func newMockTestResultRepo() *mockTestResultRepo {
	return &mockTestResultRepo{results: make(map[uint]*model.TestResult), nextID: 1}
}

func (r *mockTestResultRepo) Create(result *model.TestResult) error {
	for _, existing := range r.results {
		if existing.TestID == result.TestID && existing.StudentID == result.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	result.ID = r.nextID
	r.nextID++
	r.results[result.ID] = result
	return nil
}

func (r *mockTestResultRepo) FindByTestAndStudent(testID, studentID uint) (*model.TestResult, error) {
	for _, result := range r.results {
		if result.TestID == testID && result.StudentID == studentID {
			return result, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockTestResultRepo) FindByStudent(studentID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	for _, result := range r.results {
		if result.StudentID == studentID {
			results = append(results, *result)
		}
	}
	return results, nil
}

func (r *mockTestResultRepo) FindByTest(testID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	for _, result := range r.results {
		if result.TestID == testID {
			results = append(results, *result)
		}
	}
	return results, nil
}

type mockSavedJobRepo struct {
	saved  map[[2]uint]*model.SavedJob
	nextID uint
}

func newMockSavedJobRepo() *mockSavedJobRepo {
	return &mockSavedJobRepo{saved: make(map[[2]uint]*model.SavedJob), nextID: 1}
}

func (r *mockSavedJobRepo) Find(studentID, jobID uint) (*model.SavedJob, error) {
	saved, ok := r.saved[[2]uint{studentID, jobID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return saved, nil
}

func (r *mockSavedJobRepo) FindByStudent(studentID uint) ([]model.SavedJob, error) {
	var result []model.SavedJob
	for key, saved := range r.saved {
		if key[0] == studentID {
			result = append(result, *saved)
		}
	}
	return result, nil
}

func (r *mockSavedJobRepo) Create(saved *model.SavedJob) error {
	key := [2]uint{saved.StudentID, saved.JobID}
	if _, ok := r.saved[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	saved.ID = r.nextID
	r.nextID++
	r.saved[key] = saved
	return nil
}

func (r *mockSavedJobRepo) Delete(studentID, jobID uint) error {
	delete(r.saved, [2]uint{studentID, jobID})
	return nil
}

type notifyCall struct {
	userID  uint
	kind    string
	title   string
	message string
	link    string
}

// mockNotifier records Notify calls so tests can assert who was told what.
type mockNotifier struct {
	calls []notifyCall
}

func (m *mockNotifier) Notify(userID uint, notificationType, title, message, link string) {
	m.calls = append(m.calls, notifyCall{
		userID:  userID,
		kind:    notificationType,
		title:   title,
		message: message,
		link:    link,
	})
}

func (m *mockNotifier) List(userID uint, filter dto.NotificationFilterDTO) (*dto.NotificationListDTO, error) {
	return &dto.NotificationListDTO{}, nil
}

func (m *mockNotifier) MarkRead(userID, id uint) error { return nil }

func (m *mockNotifier) MarkAllRead(userID uint) error { return nil }
