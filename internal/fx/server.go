package fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/bharath-541/FinSight/config"
	"github.com/bharath-541/FinSight/internal/logger"
	"github.com/bharath-541/FinSight/internal/middleware"
	"github.com/bharath-541/FinSight/internal/routes"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/login", handler.Authenticate)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		users := private.Group("/user")
		{
			users.GET("/me", handler.GetProfile)
			users.PUT("/income", handler.UpdateIncome)
		}

		expenses := private.Group("/expenses")
		{
			expenses.POST("", handler.CreateExpense)
			expenses.GET("", handler.ListExpenses)
			expenses.GET("/:id", handler.GetExpense)
			expenses.PATCH("/:id", handler.UpdateExpense)
			expenses.DELETE("/:id", handler.DeleteExpense)
		}

		assets := private.Group("/assets")
		{
			assets.POST("", handler.CreateAsset)
			assets.GET("", handler.ListAssets)
			assets.GET("/:id", handler.GetAsset)
			assets.PATCH("/:id", handler.UpdateAsset)
			assets.DELETE("/:id", handler.DeleteAsset)
		}

		debts := private.Group("/debts")
		{
			debts.POST("", handler.CreateDebt)
			debts.GET("", handler.ListDebts)
			debts.GET("/:id", handler.GetDebt)
			debts.PATCH("/:id", handler.UpdateDebt)
			debts.DELETE("/:id", handler.DeleteDebt)
			debts.POST("/:id/pay-emi", handler.PayEMI)
		}

		netWorth := private.Group("/net-worth")
		{
			netWorth.GET("", handler.GetNetWorth)
			netWorth.GET("/history", handler.GetNetWorthHistory)
			netWorth.POST("/snapshot", handler.SaveNetWorthSnapshot)
		}

		private.GET("/summary", handler.GetMonthlySummary)
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			return nil
		},
	})
}
