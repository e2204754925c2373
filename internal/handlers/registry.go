package handlers

import "github.com/gin-gonic/gin"

// AppHandlers bundles every route-owning handler for the router setup.
type AppHandlers struct {
	Auth           *AuthHandler
	Business       *BusinessHandler
	Job            *JobHandler
	JobApplication *JobApplicationHandler
	Contributor    *ContributorHandler
	Article        *ArticleHandler
	Event          *EventHandler
	Payment        *PaymentHandler
	Admin          *AdminHandler
}

// RegisterAll mounts every handler under the given group.
func (h *AppHandlers) RegisterAll(rg *gin.RouterGroup) {
	h.Auth.RegisterRoutes(rg)
	h.Business.RegisterRoutes(rg)
	h.Job.RegisterRoutes(rg)
	h.JobApplication.RegisterRoutes(rg)
	h.Contributor.RegisterRoutes(rg)
	h.Article.RegisterRoutes(rg)
	h.Event.RegisterRoutes(rg)
	h.Payment.RegisterRoutes(rg)
	h.Admin.RegisterRoutes(rg)
}
