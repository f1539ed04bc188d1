package repositories

import (
	"errors"

	"afrilance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobFilter struct {
	Category string
	Search   string
	Page     int
	PageSize int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindOpenByID(db *gorm.DB, id string) (*models.Job, error)
	ListOpen(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error)
	ListByClient(db *gorm.DB, clientID string) ([]models.Job, error)
	IncrementApplications(db *gorm.DB, jobID string) error
	// AssignToFreelancer flips an open job to assigned in a single
	// conditional update. Returns the number of rows changed; zero means
	// the job was no longer open.
	AssignToFreelancer(db *gorm.DB, jobID, freelancerID, contractID string) (int64, error)
	UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindOpenByID treats a job that is no longer open as not found, so
// applicants cannot see assigned or closed postings.
func (r *JobRepositoryImpl) FindOpenByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ? AND status = ?", id, models.JobStatusOpen).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ListOpen(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{}).Where("status = ?", models.JobStatusOpen)

	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.Search != "" {
		like := "%" + criteria.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page > 0 && criteria.PageSize > 0 {
		query = query.Offset((criteria.Page - 1) * criteria.PageSize).Limit(criteria.PageSize)
	}

	var jobs []models.Job
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) ListByClient(db *gorm.DB, clientID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) IncrementApplications(db *gorm.DB, jobID string) error {
	return db.Model(&models.Job{}).Where("id = ?", jobID).
		Update("applications_count", gorm.Expr("applications_count + 1")).Error
}

func (r *JobRepositoryImpl) AssignToFreelancer(db *gorm.DB, jobID, freelancerID, contractID string) (int64, error) {
	result := db.Model(&models.Job{}).
		Where("id = ? AND status = ?", jobID, models.JobStatusOpen).
		Updates(map[string]interface{}{
			"status":                 models.JobStatusAssigned,
			"assigned_freelancer_id": freelancerID,
			"contract_id":            contractID,
		})
	return result.RowsAffected, result.Error
}

func (r *JobRepositoryImpl) UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error {
	return db.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status).Error
}
