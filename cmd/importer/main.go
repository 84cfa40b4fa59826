package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fsj-lavagens/internal/config"
	"fsj-lavagens/internal/db"
	"fsj-lavagens/internal/importer"
	vehiclerepo "fsj-lavagens/internal/repository/vehicle"
	vehiclesvc "fsj-lavagens/internal/service/vehicle"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to vehicle CSV file (headers: PLATE, VEHICLE CLASS, MAKE/MODEL)")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	enums, err := config.LoadEnums(cfg.EnumsPath)
	if err != nil {
		log.Fatalf("load enumerations: %v", err)
	}

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	svc := vehiclesvc.New(vehiclerepo.NewPostgres(pool, nil), enums)
	imp := importer.NewCSVImporter(f, svc)

	start := time.Now()
	result, err := imp.Run(ctx)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d vehicles in %s\n", result.Imported, time.Since(start).Truncate(time.Millisecond))
	for _, rowErr := range result.Errors {
		fmt.Printf("row %d: %s\n", rowErr.Row, rowErr.Message)
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}
