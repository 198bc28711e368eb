package repository

import (
	"context"
	"time"

	"github.com/yukikurage/skillswap-api/internal/database"
	"github.com/yukikurage/skillswap-api/internal/models"
	"gorm.io/gorm"
)

// GormReportRepository is a GORM implementation of ReportRepository
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &GormReportRepository{db: db}
}

// Create creates a new report
func (r *GormReportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// FindByID finds a report by ID
func (r *GormReportRepository) FindByID(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ListByStatus lists reports in the given status, newest first
func (r *GormReportRepository) ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Scopes(database.NewestFirst).
		Find(&reports).Error
	return reports, err
}

// Update saves the status, notes and resolution time of a report
func (r *GormReportRepository) Update(ctx context.Context, report *models.Report) error {
	report.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Model(report).
		Select("status", "admin_notes", "resolved_at", "updated_at").
		Updates(report).Error
}

// CountByStatus counts reports in the given status
func (r *GormReportRepository) CountByStatus(ctx context.Context, status models.ReportStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Report{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
