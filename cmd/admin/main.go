package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-gin-jobmarket/internal/core/auth"
	"go-gin-jobmarket/internal/core/cache"
	"go-gin-jobmarket/internal/core/config"
	"go-gin-jobmarket/internal/core/database"
	"go-gin-jobmarket/internal/core/logger"
	"go-gin-jobmarket/internal/core/server"
	"go-gin-jobmarket/internal/repo"
	"go-gin-jobmarket/internal/service"
	"go-gin-jobmarket/internal/transport/http/handler"
	"go-gin-jobmarket/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	users := repo.NewUserRepo(db)
	companies := repo.NewCompanyRepo(db)
	admins := repo.NewAdminRepo(db)
	projects := repo.NewProjectRepo(db)
	offers := repo.NewOfferRepo(db)
	comments := repo.NewCommentRepo(db)
	engineers := repo.NewEngineerRepo(db)
	rels := repo.NewRelations(db)

	identity := service.NewIdentityService(users, companies, admins)
	companySvc := service.NewCompanyService(users, companies, projects, offers, comments, engineers, rels)

	// 默认管理员：配置给了凭据才写，已存在则跳过
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := identity.SeedAdmin(ctx, cfg.AdminSeed.Email, cfg.AdminSeed.Password); err != nil {
			log.Warn("seed admin failed", zap.Error(err))
		}
		cancel()
	}

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	deps := handler.Deps{JWT: jwter, Actors: identity}
	router.Register(handler.NewAdminHandler(deps, identity, companySvc, c))

	r := router.NewAdminEngine(log)

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 15*time.Second, 30*time.Second, 60*time.Second)

	log.Info("admin api starting", zap.String("addr", addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("admin api start FAILED", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("admin api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
