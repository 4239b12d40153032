package handler

import (
	"net/http"

	"github.com/pthana/linkshort/pkg/adapters/handler"
	"github.com/pthana/linkshort/pkg/adapters/repository/sqlite"
	"github.com/pthana/linkshort/pkg/config"
	"github.com/pthana/linkshort/pkg/core/services"
)

var mux http.Handler

func init() {
	cfg := config.Load()

	// Note: on serverless platforms a local file DB is ephemeral; point
	// DATABASE_URL at a libsql:// remote for durable links.
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}

	service := services.NewLinkService(repo, nil)
	cleanup := services.NewCleanupService(repo)
	mux = handler.NewRouter(cfg, service, cleanup)
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
