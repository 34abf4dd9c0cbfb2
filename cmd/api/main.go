package main

import (
	"context"
	"errors"
	"fmt"
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
	"go-gin-jobmarket/internal/domain"
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

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{}, &domain.Company{}, &domain.Admin{},
			&domain.Project{}, &domain.Offer{}, &domain.Comment{}, &domain.Engineer{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 存储层
	users := repo.NewUserRepo(db)
	companies := repo.NewCompanyRepo(db)
	admins := repo.NewAdminRepo(db)
	projects := repo.NewProjectRepo(db)
	offers := repo.NewOfferRepo(db)
	comments := repo.NewCommentRepo(db)
	engineers := repo.NewEngineerRepo(db)
	rels := repo.NewRelations(db)

	// 服务层
	identity := service.NewIdentityService(users, companies, admins)
	userSvc := service.NewUserService(users, projects, offers)
	companySvc := service.NewCompanyService(users, companies, projects, offers, comments, engineers, rels)
	projectSvc := service.NewProjectService(users, companies, projects, rels)
	offerSvc := service.NewOfferService(users, companies, projects, offers, rels)
	commentSvc := service.NewCommentService(companies, comments, rels)

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	deps := handler.Deps{JWT: jwter, Actors: identity}
	router.Register(handler.NewUserHandler(deps, identity, userSvc))
	router.Register(handler.NewCompanyHandler(deps, identity, companySvc, c))
	router.Register(handler.NewProjectHandler(deps, projectSvc))
	router.Register(handler.NewOfferHandler(deps, offerSvc))
	router.Register(handler.NewCommentHandler(deps, commentSvc))

	r := router.NewAPIEngine(log)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
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
