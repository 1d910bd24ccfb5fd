package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface, the public contact form, the
// auth endpoints, and the admin-gated write surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/profile", handlers.profileHandler.getProfile())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())

		r.Get("/certifications", handlers.certificationHandler.getAllCertifications())
		r.Get("/certification/{certificationID}", handlers.certificationHandler.getCertification())

		r.Get("/blog-posts", handlers.blogPostHandler.getPublishedBlogPosts())
		r.Get("/blog-posts/slug/{slug}", handlers.blogPostHandler.getBlogPostBySlug())

		r.Get("/services", handlers.serviceHandler.getAllServices())

		r.Post("/contact", handlers.messageHandler.submitMessage())

		r.Post("/auth/sign-in", handlers.authHandler.signIn())
		r.Post("/auth/sign-out", handlers.authHandler.signOut())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/auth/session", handlers.authHandler.session())

		r.Put("/profile", handlers.profileHandler.upsertProfile())

		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/certification", handlers.certificationHandler.createCertification())
		r.Put("/certification/{certificationID}", handlers.certificationHandler.updateCertification())
		r.Delete("/certification/{certificationID}", handlers.certificationHandler.deleteCertification())

		r.Get("/admin/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog-post/{blogPostID}", handlers.blogPostHandler.getBlogPost())
		r.Post("/blog-post", handlers.blogPostHandler.createBlogPost())
		r.Put("/blog-post/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
		r.Post("/blog-post/{blogPostID}/publish", handlers.blogPostHandler.togglePublish())
		r.Delete("/blog-post/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

		r.Post("/service", handlers.serviceHandler.createService())
		r.Put("/service/{serviceID}", handlers.serviceHandler.updateService())
		r.Delete("/service/{serviceID}", handlers.serviceHandler.deleteService())

		r.Get("/messages", handlers.messageHandler.getAllMessages())
		r.Patch("/message/{messageID}/read", handlers.messageHandler.markMessageRead())
		r.Delete("/message/{messageID}", handlers.messageHandler.deleteMessage())

		r.Post("/uploads/{folder}", handlers.uploadHandler.uploadAsset())
	})
}
