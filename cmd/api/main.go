package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fsj-lavagens/internal/config"
	"fsj-lavagens/internal/db"
	"fsj-lavagens/internal/httpserver"
	orderrepo "fsj-lavagens/internal/repository/order"
	pricerepo "fsj-lavagens/internal/repository/price"
	supplierrepo "fsj-lavagens/internal/repository/supplier"
	userrepo "fsj-lavagens/internal/repository/user"
	vehiclerepo "fsj-lavagens/internal/repository/vehicle"
	identitysvc "fsj-lavagens/internal/service/identity"
	ordersvc "fsj-lavagens/internal/service/order"
	suppliersvc "fsj-lavagens/internal/service/supplier"
	vehiclesvc "fsj-lavagens/internal/service/vehicle"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	enums, err := config.LoadEnums(cfg.EnumsPath)
	if err != nil {
		logger.Fatalf("load enumerations: %v", err)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	vehicleRepo := vehiclerepo.NewPostgres(dbpool, logger)
	supplierRepo := supplierrepo.NewPostgres(dbpool, logger)
	priceRepo := pricerepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	vehicleService := vehiclesvc.New(vehicleRepo, enums)
	supplierService := suppliersvc.New(supplierRepo, priceRepo, enums)
	identityService := identitysvc.New(userRepo, cfg.JWTSecret, cfg.JWTExpiresIn)
	orderService := ordersvc.New(orderRepo, vehicleRepo, priceRepo, enums)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		VehicleSvc:  vehicleService,
		SupplierSvc: supplierService,
		IdentitySvc: identityService,
		OrderSvc:    orderService,
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
