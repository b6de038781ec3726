package repository

import (
	"github.com/todoplanner/todo-planner-api/internal/models"
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
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID. Hidden rows are returned too so the
// caller can distinguish "deleted" from "not found".
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_id_pk = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernameAndEmail finds the user where both fields match the same row
func (r *GormUserRepository) FindByUsernameAndEmail(username, email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? AND email = ?", username, email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByID reports whether any user row has the given ID
func (r *GormUserRepository) ExistsByID(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("user_id_pk = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UsernameTaken reports whether username belongs to a row other than excludeID.
// Hidden rows count: uniqueness is never released by soft-delete.
func (r *GormUserRepository) UsernameTaken(username, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&models.User{}).Where("username = ?", username)
	if excludeID != "" {
		query = query.Where("user_id_pk <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// EmailTaken reports whether email belongs to a row other than excludeID
func (r *GormUserRepository) EmailTaken(email, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("user_id_pk <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists changes to an existing user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
