package routes

import (
	"SipMate-Backend/internal/api/handlers"
	"SipMate-Backend/internal/middleware"
	"SipMate-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	WineHandler      handlers.WineHandler
	CellarHandler    handlers.CellarHandler
	RecommendHandler handlers.RecommendHandler
	CommunityHandler handlers.CommunityHandler
	PremiumHandler   handlers.PremiumHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Wines()
	c.Cellar()
	c.Recommendations()
	c.Community()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.PremiumHandler.Subscribe)
	}
}

func (c *Config) Wines() {
	wines := c.App.Group("/api/v1/wines", c.Middleware.AuthMiddleware(c.JWTService))

	wines.Get("", c.WineHandler.GetWines)
	wines.Get("/:id", c.WineHandler.GetWineDetails)
}

func (c *Config) Cellar() {
	cellar := c.App.Group("/api/v1/cellar", c.Middleware.AuthMiddleware(c.JWTService))

	cellar.Get("", c.CellarHandler.GetSavedWines)
	cellar.Post("", c.CellarHandler.SaveWine)
	cellar.Delete("/:wine_id", c.CellarHandler.UnsaveWine)
}

func (c *Config) Recommendations() {
	rec := c.App.Group("/api/v1/recommendations", c.Middleware.AuthMiddleware(c.JWTService))

	rec.Get("", c.RecommendHandler.GetRecommendations)
	rec.Get("/moods", c.RecommendHandler.GetMoods)
	rec.Get("/price-bands", c.RecommendHandler.GetPriceBands)
	rec.Post("/moods/:label", c.RecommendHandler.ToggleMood)
	rec.Post("/price-bands/:label", c.RecommendHandler.TogglePriceBand)
	rec.Post("/chat", c.RecommendHandler.Chat)
	rec.Get("/chat", c.RecommendHandler.GetTranscript)
}

func (c *Config) Community() {
	posts := c.App.Group("/api/v1/community/posts", c.Middleware.AuthMiddleware(c.JWTService))

	posts.Get("", c.CommunityHandler.GetPosts)
	posts.Post("", c.CommunityHandler.CreatePost)
	posts.Delete("/:post_id", c.CommunityHandler.DeletePost)
	posts.Post("/:post_id/like", c.CommunityHandler.ToggleLike)
	posts.Get("/:post_id/comments", c.CommunityHandler.GetComments)
	posts.Post("/:post_id/comments", c.CommunityHandler.CreateComment)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PremiumHandler.MidtransWebhook)
}
