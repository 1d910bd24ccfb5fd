package api

import (
	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, uploader *storage.Uploader, tokens *auth.TokenManager, guard *config.Guard) *routeHandlers {
	return &routeHandlers{
		profileHandler:       newProfileHandler(db.ProfileRepo()),
		projectHandler:       newProjectHandler(db.ProjectRepo()),
		certificationHandler: newCertificationHandler(db.CertificationRepo()),
		blogPostHandler:      newBlogPostHandler(db.BlogPostRepo()),
		serviceHandler:       newServiceHandler(db.ServiceRepo()),
		messageHandler:       newMessageHandler(db.MessageRepo()),
		authHandler:          newAuthHandler(db.AdminUserRepo(), tokens, guard),
		uploadHandler:        newUploadHandler(uploader),
	}
}
