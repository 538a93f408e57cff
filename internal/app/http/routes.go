package routes

import (
	adminapi "storefront-cms/internal/api/admin"
	articlesapi "storefront-cms/internal/api/articles"
	authapi "storefront-cms/internal/api/auth"
	contentsapi "storefront-cms/internal/api/contents"
	mediaapi "storefront-cms/internal/api/media"
	productsapi "storefront-cms/internal/api/products"
	slidesapi "storefront-cms/internal/api/slides"
	storefrontapi "storefront-cms/internal/api/storefront"
	"storefront-cms/internal/app/http/middleware"
	"storefront-cms/internal/domain/articles"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs custom binding rules on gin's validator.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("slugfmt", func(fl validator.FieldLevel) bool {
			return articles.IsValidSlug(fl.Field().String())
		})
	}
}

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public surface: reads for everyone, auth endpoints sanitized.
	public := r.Group("/api")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)
	public.POST("/auth/logout", authapi.Logout)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/articles", articlesapi.ListArticles)
	public.GET("/articles/:id", articlesapi.GetArticle)
	public.GET("/article-contents/:id", contentsapi.GetBlock)
	public.GET("/media", mediaapi.ListMedia)
	public.GET("/media/:id", mediaapi.GetMedia)
	public.GET("/products", productsapi.ListProducts)
	public.GET("/products/:id", productsapi.GetProduct)
	public.GET("/slides", slidesapi.ListSlides)
	public.GET("/slides/:id", slidesapi.GetSlide)

	public.GET("/storefront/home", storefrontapi.Home)
	public.GET("/storefront/articles/:slug", storefrontapi.GetArticle)

	// Authenticated, any role.
	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware())
	authed.GET("/auth/me", authapi.Me)

	// Admin console: every mutation of content requires the ADMIN role.
	admin := r.Group("/api")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
		middleware.SanitizeAndCleanInputMiddleware(),
	)

	admin.POST("/articles", articlesapi.CreateArticle)
	admin.PUT("/articles/:id", articlesapi.UpdateArticle)
	admin.DELETE("/articles/:id", articlesapi.DeleteArticle)

	admin.POST("/article-contents", contentsapi.CreateBlock)
	admin.PUT("/article-contents/:id", contentsapi.UpdateBlock)
	admin.DELETE("/article-contents/:id", contentsapi.DeleteBlock)

	admin.POST("/media", mediaapi.UploadMedia)
	admin.PUT("/media/:id", mediaapi.UpdateMedia)
	admin.DELETE("/media/:id", mediaapi.DeleteMedia)

	admin.POST("/products", productsapi.CreateProduct)
	admin.PUT("/products/:id", productsapi.UpdateProduct)
	admin.DELETE("/products/:id", productsapi.DeleteProduct)

	admin.POST("/slides", slidesapi.CreateSlide)
	admin.PUT("/slides/:id", slidesapi.UpdateSlide)
	admin.DELETE("/slides/:id", slidesapi.DeleteSlide)

	admin.GET("/admin/dashboard", adminapi.Dashboard)
	admin.GET("/admin/users", adminapi.ListUsers)
	admin.GET("/admin/users/:id", adminapi.GetUser)
	admin.PUT("/admin/users/:id", adminapi.UpdateUser)
	admin.DELETE("/admin/users/:id", adminapi.DeleteUser)
}
