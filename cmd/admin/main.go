// Command admin grants or revokes the admin flag for an existing user.
//
//	admin -email owner@velura.com
//	admin -email owner@velura.com -admin=false
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/parlour-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/parlour-booking/internal/infra/repository"
	"github.com/BruksfildServices01/parlour-booking/internal/logger"
)

func main() {
	email := flag.String("email", "", "Email of the user to update")
	admin := flag.Bool("admin", true, "Admin flag to set")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*email, *admin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(email string, admin bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(config.LogConfig{Level: "warn", Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	dbCfg := cfg.DB
	dbCfg.Seed = false

	db, err := dbpkg.NewDB(dbCfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = dbpkg.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return setAdmin(ctx, infraRepo.NewUserGormRepository(db), email, admin)
}
