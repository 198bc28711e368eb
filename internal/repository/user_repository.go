package repository

import (
	"context"
	"database/sql"

	"github.com/yukikurage/skillswap-api/internal/database"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first
func (r *GormUserRepository) List(ctx context.Context, page utils.PaginationParams) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := query.Scopes(database.NewestFirst, database.Paginate(page)).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListPublic returns public, non-banned users matching the filter, newest first
func (r *GormUserRepository) ListPublic(ctx context.Context, filter PublicUserFilter) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).
		Where("is_public = ? AND is_banned = ?", true, false)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"(LOWER(name) LIKE LOWER(?) OR LOWER(skills_offered) LIKE LOWER(?) OR LOWER(skills_wanted) LIKE LOWER(?))",
			like, like, like,
		)
	}
	if filter.Skill != "" {
		// skills_offered is stored as a JSON array, so a substring match finds
		// any element containing the skill.
		query = query.Where("LOWER(skills_offered) LIKE LOWER(?)", "%"+filter.Skill+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := query.Scopes(database.NewestFirst, database.Paginate(filter.Page)).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// SetBanned writes the banned flag
func (r *GormUserRepository) SetBanned(ctx context.Context, id string, banned bool) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("is_banned", banned).Error
}

// SetAdmin writes the admin flag
func (r *GormUserRepository) SetAdmin(ctx context.Context, id string, admin bool) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("is_admin", admin).Error
}

// MarkProtected grants admin rights and the protected flag
func (r *GormUserRepository) MarkProtected(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_admin": true, "is_protected": true}).Error
}

// IncrementSwapsCompleted atomically adds one to the completed swap counter
func (r *GormUserRepository) IncrementSwapsCompleted(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("swaps_completed", gorm.Expr("swaps_completed + ?", 1)).Error
}

// CountActive counts users that are not banned
func (r *GormUserRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("is_banned = ?", false).Count(&count).Error
	return count, err
}

// AverageRating averages the rating of non-banned users that have been rated at least once
func (r *GormUserRepository) AverageRating(ctx context.Context) (float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("AVG(rating)").
		Where("is_banned = ? AND rating > ?", false, 0).
		Row().Scan(&avg)
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}
