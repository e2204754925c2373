package dto

type CreateArticleRequest struct {
	Title         string  `json:"title" validate:"required,min=3,max=200"`
	Excerpt       *string `json:"excerpt" validate:"omitempty,max=500"`
	Content       string  `json:"content" validate:"required"`
	CoverImageURL *string `json:"coverImageUrl" validate:"omitempty,url"`
}

type UpdateArticleRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=3,max=200"`
	Excerpt       *string `json:"excerpt" validate:"omitempty,max=500"`
	Content       *string `json:"content"`
	CoverImageURL *string `json:"coverImageUrl" validate:"omitempty,url"`
}

type ArticleListQuery struct {
	ListQuery
	Status   string `form:"status"`
	AuthorID string `form:"authorId"`
}
