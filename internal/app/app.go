package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	ctl "wallpost/internal/controller"
	stickerRepo "wallpost/internal/repository/sticker"
	tokenRepo "wallpost/internal/repository/token"
	userRepo "wallpost/internal/repository/user"
	authService "wallpost/internal/service/auth"
	stickerService "wallpost/internal/service/sticker"
	"wallpost/pkg/config"
	"wallpost/pkg/database"
	"wallpost/pkg/logger"
)

type appServer struct {
	config            *config.Config
	authService       authService.Service
	controller        ctl.ControllerProvider
	stickerController *ctl.StickerController
}

// NewAppServer creates a new instance of appServer with the provided configuration.
func NewAppServer(cfg *config.Config) *appServer {
	// initialize database
	db, err := database.NewPgDB(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}

	return NewAppServerWithDB(cfg, db)
}

// NewAppServerWithDB wires the server onto an already-open database pool.
func NewAppServerWithDB(cfg *config.Config, db *sql.DB) *appServer {
	// initialize repositories
	userRepository := userRepo.NewRepository(db)
	tokenRepository := tokenRepo.NewRepository(db)
	stickerRepository := stickerRepo.NewRepository(db)

	// initialize services
	authSvc := authService.NewAuthService(userRepository, tokenRepository)
	stickerSvc := stickerService.NewStickerService(stickerRepository)

	// initialize controllers
	controller := ctl.NewController(authSvc)
	stickerController := ctl.NewStickerController(stickerSvc)

	return &appServer{
		config:            cfg,
		authService:       authSvc,
		controller:        controller,
		stickerController: stickerController,
	}
}

func (a *appServer) Serve() {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.Port),
		Handler: a.RegisterHandlers(),
	}

	// serve the server
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	logger.Infof("server started on port %s", a.config.Port)

	a.gracefulShutdown(server)

	logger.Info("server shutdown complete")
}

func (a *appServer) gracefulShutdown(server *http.Server) {
	ctx, stopCtx := context.WithCancel(context.Background())

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP) // wait for the sigterm
		<-signals

		// we received an os signal, shut down.
		err := server.Shutdown(ctx)
		if err != nil {
			logger.Error(err, "server shutdown error")
		} else {
			logger.Info("server graceful shutdown")
		}

		stopCtx()
	}()

	<-ctx.Done()
}
