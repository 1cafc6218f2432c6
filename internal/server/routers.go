package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"finpredictor/internal/ai"
	"finpredictor/internal/client"
	_ "finpredictor/internal/docs" // Import swagger docs
	"finpredictor/internal/gateway"
	"finpredictor/internal/handlers"
	"finpredictor/internal/models"
	"finpredictor/internal/services"
)

func (a *App) usersRouter() *gin.Engine {
	db := a.gormDB()
	userService := services.NewUserService(
		newStore[models.UserAccount](db, "users"),
		newStore[string](db, "emails"),
	)
	userHandler := handlers.NewUserHandler(userService)

	r := newEngine()
	r.GET("/", handlers.Health("users"))
	r.POST("/signup", userHandler.Signup)
	r.POST("/login", userHandler.Login)
	r.GET("/:user_id", userHandler.GetUser)
	return r
}

func (a *App) portfolioRouter() *gin.Engine {
	assetService := services.NewAssetService(newStore[models.Asset](a.gormDB(), "assets"))
	portfolioHandler := handlers.NewPortfolioHandler(assetService)

	r := newEngine()
	r.GET("/", handlers.Health("portfolio"))
	r.POST("/projection", portfolioHandler.Project)
	r.GET("/:user_id", portfolioHandler.GetPortfolio)
	r.POST("/:user_id/assets", portfolioHandler.AddAsset)
	r.PUT("/:user_id/assets/:asset_id/price", portfolioHandler.UpdateAssetPrice)
	r.DELETE("/:user_id/assets/:asset_id", portfolioHandler.DeleteAsset)
	return r
}

func (a *App) goalsRouter() *gin.Engine {
	valuer := services.NewAssetValuer(client.NewPortfolioClient(a.cfg.PortfolioURL, a.upstreamClient()))
	goalService := services.NewGoalService(newStore[models.Goal](a.gormDB(), "goals"), valuer)
	goalHandler := handlers.NewGoalHandler(goalService)

	r := newEngine()
	r.GET("/", handlers.Health("goals"))
	r.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/:user_id", goalHandler.ListGoals)
	r.POST("/:user_id", goalHandler.CreateGoal)
	r.GET("/:user_id/:goal_id", goalHandler.GetGoal)
	r.DELETE("/:user_id/:goal_id", goalHandler.DeleteGoal)
	return r
}

func (a *App) aiRouter() *gin.Engine {
	llama := ai.NewLlamaClient(a.cfg.LlamaAPIURL, a.cfg.LlamaModel, a.cfg.LlamaAPIKey)
	cerebras := ai.NewCerebrasClient(a.cfg.CerebrasAPIURL, a.cfg.CerebrasAPIKey)
	a.log.Infow("ai providers configured",
		"llama_endpoint", llama.Endpoint(),
		"llama_model", llama.Model(),
		"cerebras_endpoint", cerebras.Endpoint(),
	)
	aiHandler := handlers.NewAIHandler(services.NewInsightService(llama, cerebras))

	r := newEngine()
	r.GET("/", handlers.Health("ai"))
	r.POST("/predict", aiHandler.Predict)
	return r
}

func (a *App) gatewayHandler() (http.Handler, error) {
	routes, err := gateway.DefaultRoutes(a.cfg.UsersURL, a.cfg.PortfolioURL, a.cfg.GoalsURL, a.cfg.AIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway routes: %w", err)
	}
	for _, route := range routes.Routes() {
		a.log.Infow("gateway route", "prefix", route.Prefix, "upstream", route.Upstream.String())
	}
	return NewGatewayHandler(gateway.NewProxy(routes, a.upstreamClient(),
		gateway.WithForwardAllHeaders(a.cfg.GatewayForwardAllHeaders))), nil
}

// NewGatewayHandler serves the gateway health check and hands every other
// path to the proxy. Preflight requests get CORS headers and still reach
// the proxy.
func NewGatewayHandler(proxy *gateway.Proxy) http.Handler {
	r := newEngine()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"gateway": "ok"})
	})
	r.NoRoute(proxy.Handle)

	c := cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposedHeaders:     []string{"X-Request-ID"},
		OptionsPassthrough: true,
	})
	return c.Handler(r)
}
