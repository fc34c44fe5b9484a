package httpserver

import (
	"errors"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, opts Options) (*gin.Engine, error) {
	if deps.Catalog == nil {
		return nil, errors.New("catalog service required")
	}
	if deps.Sessions == nil {
		return nil, errors.New("session store required")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(opts.CORSAllowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/games", listGamesHandler(deps.Catalog))
	router.GET("/games/:id", getGameHandler(deps.Catalog))
	router.GET("/facets", facetsHandler(deps.Catalog))

	sessioned := router.Group("/", sessionMiddleware(deps.Sessions, logger))
	sessioned.GET("/cart", getCartHandler())
	sessioned.POST("/cart/items", addCartItemHandler(deps.Catalog, logger))
	sessioned.POST("/cart/checkout", checkoutHandler(logger))
	sessioned.GET("/view", viewHandler(deps.Catalog))
	router.DELETE("/session", endSessionHandler(deps.Sessions))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			// Credentials cannot be combined with a wildcard origin.
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
