package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"easyshop/internal/config"
	"easyshop/internal/db"
	"easyshop/internal/httpserver"
	cartrepo "easyshop/internal/repository/cart"
	categoryrepo "easyshop/internal/repository/category"
	productrepo "easyshop/internal/repository/product"
	profilerepo "easyshop/internal/repository/profile"
	userrepo "easyshop/internal/repository/user"
	cartsvc "easyshop/internal/service/cart"
	categorysvc "easyshop/internal/service/category"
	productsvc "easyshop/internal/service/product"
	profilesvc "easyshop/internal/service/profile"
	usersvc "easyshop/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	categoryRepo := categoryrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool, logger)
	profileRepo := profilerepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CategorySvc: categorysvc.New(categoryRepo),
		ProductSvc:  productsvc.New(productRepo),
		CartSvc:     cartsvc.New(cartRepo, productRepo, logger),
		ProfileSvc:  profilesvc.New(profileRepo),
		Identity:    usersvc.New(userRepo),
	}, httpserver.Options{
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		IdentityHeader:   cfg.IdentityHeader,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
