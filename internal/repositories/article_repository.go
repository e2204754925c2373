package repositories

import (
	"errors"

	"gorm.io/gorm"

	"workhub_backend/internal/models"
)

var ErrArticleNotFound = errors.New("article not found")

type ArticleRepository interface {
	Create(article *models.Article) error
	FindByID(id string) (*models.Article, error)
	FindBySlug(slug string) (*models.Article, error)
	FindByIDForAuthor(id, authorID string) (*models.Article, error)
	Update(article *models.Article) error
	FindWithFilter(filter ArticleFilter) ([]models.Article, int64, error)
}

type ArticleFilter struct {
	Status   models.ArticleStatus
	AuthorID string
	Query    string
	// OrderByPublished sorts by published_at DESC instead of created_at.
	OrderByPublished bool
	Page             PageQuery
}

type ArticleRepositoryImpl struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &ArticleRepositoryImpl{db: db}
}

func (r *ArticleRepositoryImpl) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *ArticleRepositoryImpl) FindByID(id string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").First(&article, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) FindByIDForAuthor(id, authorID string) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, "id = ? AND author_id = ?", id, authorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *ArticleRepositoryImpl) FindWithFilter(filter ArticleFilter) ([]models.Article, int64, error) {
	query := r.db.Model(&models.Article{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if filter.OrderByPublished {
		order = "published_at DESC NULLS LAST"
	}

	var articles []models.Article
	err := query.Preload("Author").
		Order(order).
		Scopes(Paginate(filter.Page)).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}
