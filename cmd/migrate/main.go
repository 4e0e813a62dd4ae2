// migrate aplica el esquema de la base configurada y, si BOOTSTRAP_EMPLOYER_PHONE
// y BOOTSTRAP_EMPLOYER_PASSWORD están definidos, crea el employer inicial.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/majidtech25/my-project02/internal/application/dto"
	"github.com/majidtech25/my-project02/internal/application/usecase"
	"github.com/majidtech25/my-project02/internal/infrastructure/storage"
	"github.com/majidtech25/my-project02/pkg/config"
	"github.com/majidtech25/my-project02/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("migración")
	}
	defer store.Close()
	log.Info().Str("driver", store.Driver).Msg("esquema aplicado")

	if !cfg.Bootstrap.Enabled() {
		return
	}
	employees := usecase.NewEmployeeUseCase(store.Tx, store.Repos, log.Component("employees"))
	needs, err := employees.NeedsBootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar empleados")
	}
	if !needs {
		log.Info().Msg("ya existen empleados, se omite el employer inicial")
		return
	}
	out, err := employees.Bootstrap(ctx, dto.CreateEmployeeRequest{
		Name:     cfg.Bootstrap.EmployerName,
		Phone:    cfg.Bootstrap.EmployerPhone,
		Password: cfg.Bootstrap.EmployerPassword,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear employer inicial")
	}
	log.Info().Str("employee_id", out.ID).Str("phone", out.Phone).Msg("employer inicial creado")
}
