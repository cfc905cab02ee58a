package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Dishalex/PhotoShare/internal/config"
	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/db"
	"github.com/Dishalex/PhotoShare/internal/di"
	"github.com/Dishalex/PhotoShare/internal/logging"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

func main() {
	configDir := flag.String("config", "config", "directory containing config.yaml")
	exportRoutes := flag.Bool("export", false, "write routes to routes.json and exit")
	flag.Parse()

	if err := config.InitConfig(*configDir); err != nil {
		logging.Fatal().Err(err).Msg("❌ failed to load config")
	}
	cfg := config.Get()
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("❌ failed to open database")
	}

	app, err := di.InitializeApplication(gdb, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("❌ failed to assemble application")
	}
	if err := app.Service.InitializeSettings(); err != nil {
		logging.Fatal().Err(err).Msg("❌ failed to initialize settings")
	}
	if err := utils.RegisterValidators(); err != nil {
		logging.Fatal().Err(err).Msg("❌ failed to register validators")
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	app.Router.Init(r)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	if *exportRoutes {
		if err := exportAPI(r, "routes.json"); err != nil {
			logging.Fatal().Err(err).Msg("❌ failed to export routes")
		}
		logging.Info().Msg("✅ routes exported to routes.json")
		return
	}

	printWelcomeMessage(cfg.Server.Port)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           withCORS(r, cfg.Server.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("port", cfg.Server.Port).Msg("🚀 server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("❌ server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info().Msg("🛑 shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("❌ forced shutdown")
	}
	if err := app.Service.CloseRedis(); err != nil {
		logging.Warn().Err(err).Msg("⚠️ closing redis failed")
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logging.Info().Msg("✅ server stopped")
}

// withCORS wraps the engine with the configured allowed origins.
func withCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowAll := false
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			allowAll = true
			break
		}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: !allowAll,
		MaxAge:           300,
	})(h)
}

func printWelcomeMessage(port string) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  version : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🔥  port    : %s\n", port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

type routeInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportAPI(r *gin.Engine, path string) error {
	routes := r.Routes()
	exportList := make([]routeInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, routeInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	data, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
