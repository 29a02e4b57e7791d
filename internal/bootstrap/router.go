package bootstrap

import (
	"context"
	"log"
	"net/http"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/transit-design-lab/snd-backend/internal/api/http"
	"github.com/transit-design-lab/snd-backend/internal/api/http/middleware"
	authmw "github.com/transit-design-lab/snd-backend/internal/auth/middleware"
	"github.com/transit-design-lab/snd-backend/internal/feeds"
	sndhttp "github.com/transit-design-lab/snd-backend/internal/snd/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Evaluations *sndhttp.Handler
	AuthClient  *fbauth.Client
	Fetcher     *feeds.Fetcher
	FeedID      string
	LodesState  string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	if dep.AuthClient != nil {
		api.Use(authmw.FirebaseAuthMiddleware(dep.AuthClient))
	} else {
		log.Println("Firebase auth disabled; requests identify via X-User-Id")
	}

	dep.Evaluations.Register(api)

	if dep.Fetcher != nil {
		admin := r.Group("/admin")
		admin.Use(middleware.APIKeyMiddleware())
		admin.POST("/feeds/refresh", feedRefreshHandler(dep))
	}

	return r
}

func feedRefreshHandler(dep RouterDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Minute)
		defer cancel()

		gtfsPath, err := dep.Fetcher.FetchGTFS(ctx, dep.FeedID, true)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		year := time.Now().Year() - 2
		lodesPath, err := dep.Fetcher.FetchLODES(ctx, dep.LodesState, year)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"gtfs": gtfsPath, "lodes": lodesPath})
	}
}
