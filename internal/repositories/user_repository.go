package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"workhub_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrRoleNotFound      = errors.New("role not found")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmailOrUsername(identifier string) (*models.User, error)
	Create(user *models.User, roles []models.Role) error
	UpdateLastLogin(userID string, at time.Time) error
	UpdateActive(userID string, isActive bool) error
	FindWithFilter(filter UserFilter) ([]models.User, int64, error)

	FindRoleByName(name string) (*models.Role, error)
	AssignRole(userID string, role *models.Role) error
}

type UserFilter struct {
	Query    string
	IsActive *bool
	Role     string
	Page     PageQuery
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmailOrUsername(identifier string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").
		First(&user, "email = ? OR username = ?", identifier, identifier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User, roles []models.Role) error {
	var existing models.User
	err := r.db.Where("email = ? OR username = ?", user.Email, user.Username).
		First(&existing).Error
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if len(roles) > 0 {
			if err := tx.Model(user).Association("Roles").Append(roles); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepositoryImpl) UpdateLastLogin(userID string, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("last_login_at", at).Error
}

func (r *UserRepositoryImpl) UpdateActive(userID string, isActive bool) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("is_active", isActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindWithFilter(filter UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR username ILIKE ?",
			pattern, pattern, pattern)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Role != "" {
		query = query.
			Joins("JOIN user_roles ON user_roles.user_id = users.id").
			Joins("JOIN roles ON roles.id = user_roles.role_id").
			Where("roles.name = ?", filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Preload("Roles").
		Order("created_at DESC").
		Scopes(Paginate(filter.Page)).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) FindRoleByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *UserRepositoryImpl) AssignRole(userID string, role *models.Role) error {
	user := models.User{BaseModel: models.BaseModel{ID: userID}}
	return r.db.Model(&user).Association("Roles").Append(role)
}
