package services

import (
	"errors"
	"time"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"
)

type ArticleService interface {
	Create(authorID string, req *dto.CreateArticleRequest) (*models.Article, error)
	GetByIDOrSlug(idOrSlug string) (*models.Article, error)
	ListPublic(query *dto.ArticleListQuery) ([]models.Article, repositories.PageMeta, error)
	ListMine(authorID string, query *dto.ArticleListQuery) ([]models.Article, repositories.PageMeta, error)
	Update(id, authorID string, req *dto.UpdateArticleRequest) (*models.Article, error)
	ChangeStatus(id, status string) (*models.Article, error)
}

type ArticleServiceImpl struct {
	articles     repositories.ArticleRepository
	contributors ContributorService
}

func NewArticleService(articles repositories.ArticleRepository, contributors ContributorService) ArticleService {
	return &ArticleServiceImpl{articles: articles, contributors: contributors}
}

// Create stores a new article as PUBLISHED. Only active contributors
// may write.
func (s *ArticleServiceImpl) Create(authorID string, req *dto.CreateArticleRequest) (*models.Article, error) {
	if _, err := s.contributors.RequireActive(authorID); err != nil {
		return nil, err
	}

	now := time.Now()
	article := &models.Article{
		AuthorID:      authorID,
		Title:         req.Title,
		Slug:          MakeSlug(req.Title),
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Status:        models.ArticleStatusPublished,
		PublishedAt:   &now,
	}

	if err := s.articles.Create(article); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("article created", "article_id", article.ID, "author_id", authorID)
	return article, nil
}

func (s *ArticleServiceImpl) GetByIDOrSlug(idOrSlug string) (*models.Article, error) {
	var article *models.Article
	var err error
	if isUUID(idOrSlug) {
		article, err = s.articles.FindByID(idOrSlug)
	} else {
		article, err = s.articles.FindBySlug(idOrSlug)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrArticleNotFound()
		}
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

// ListPublic defaults to PUBLISHED, newest publication first.
func (s *ArticleServiceImpl) ListPublic(query *dto.ArticleListQuery) ([]models.Article, repositories.PageMeta, error) {
	status := query.Status
	if status == "" {
		status = string(models.ArticleStatusPublished)
	}
	return s.list(repositories.ArticleFilter{
		Status:           models.ArticleStatus(status),
		Query:            query.Query,
		OrderByPublished: true,
		Page:             repositories.PageQuery{Page: query.Page, Limit: query.Limit},
	})
}

func (s *ArticleServiceImpl) ListMine(authorID string, query *dto.ArticleListQuery) ([]models.Article, repositories.PageMeta, error) {
	return s.list(repositories.ArticleFilter{
		Status:   models.ArticleStatus(query.Status),
		AuthorID: authorID,
		Query:    query.Query,
		Page:     repositories.PageQuery{Page: query.Page, Limit: query.Limit},
	})
}

func (s *ArticleServiceImpl) list(filter repositories.ArticleFilter) ([]models.Article, repositories.PageMeta, error) {
	filter.Page.Normalize()
	articles, total, err := s.articles.FindWithFilter(filter)
	if err != nil {
		return nil, repositories.PageMeta{}, apperrors.InternalError(err)
	}
	return articles, repositories.NewPageMeta(filter.Page, total), nil
}

func (s *ArticleServiceImpl) Update(id, authorID string, req *dto.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articles.FindByIDForAuthor(id, authorID)
	if err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrArticleNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Excerpt != nil {
		article.Excerpt = req.Excerpt
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.CoverImageURL != nil {
		article.CoverImageURL = req.CoverImageURL
	}

	if err := s.articles.Update(article); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

// ChangeStatus is the moderation entry point (admin only at the route
// level). The first move to PUBLISHED stamps publishedAt; re-publishing
// later never resets it.
func (s *ArticleServiceImpl) ChangeStatus(id, status string) (*models.Article, error) {
	if appErr := ValidateStatus(KindArticle, status); appErr != nil {
		return nil, appErr
	}

	article, err := s.articles.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.ErrArticleNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if article.Status == models.ArticleStatus(status) {
		return article, nil
	}

	article.Status = models.ArticleStatus(status)
	if article.Status == models.ArticleStatusPublished && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articles.Update(article); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("article status changed", "article_id", id, "status", status)
	return article, nil
}
