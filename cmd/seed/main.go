// Команда seed создает схему (по флагу -schema), администратора, расписание Пн-Пт
// и демонстрационный каталог. Повторный запуск ничего не дублирует.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/BookEasy-Service/internal/config"
	"github.com/m04kA/BookEasy-Service/internal/domain"
	adminRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/admin"
	ruleRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/rule"
	serviceRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/service"
	"github.com/m04kA/BookEasy-Service/internal/service/auth"
	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
	"github.com/m04kA/BookEasy-Service/pkg/ptr"
	"github.com/m04kA/BookEasy-Service/pkg/txmanager"
)

const (
	defaultAdminEmail    = "admin@bookeasy.com"
	defaultAdminPassword = "admin123"
)

var catalog = []domain.Service{
	{Name: "Consultation découverte", DurationMin: 30, PriceCents: 0, Description: ptr.Ptr("Premier rendez-vous gratuit"), IsActive: true},
	{Name: "Coaching individuel", DurationMin: 60, PriceCents: 8000, Description: ptr.Ptr("Séance de coaching personnalisé"), IsActive: true},
	{Name: "Coaching premium", DurationMin: 90, PriceCents: 12000, Description: ptr.Ptr("Séance approfondie avec suivi"), IsActive: true},
	{Name: "Atelier groupe", DurationMin: 120, PriceCents: 4500, Description: ptr.Ptr("Atelier collectif"), IsActive: true},
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "путь к config.toml")
	schemaPath := flag.String("schema", "", "SQL файл схемы, применяется перед сидированием")
	adminEmail := flag.String("admin-email", defaultAdminEmail, "email администратора")
	adminPassword := flag.String("admin-password", defaultAdminPassword, "пароль администратора")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewWithOptions("", cfg.Logs.Level, logger.Options{Format: cfg.Logs.Format, Service: "bookeasy-seed"})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	if *schemaPath != "" {
		schema, err := os.ReadFile(*schemaPath)
		if err != nil {
			log.Fatal("Failed to read schema %s: %v", *schemaPath, err)
		}
		if _, err := db.ExecContext(ctx, string(schema)); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}
		log.Info("Schema %s applied", *schemaPath)
	}

	wrappedDB := dbmetrics.Plain(db)
	txManager := txmanager.NewTransactionManager(wrappedDB, cfg.Database.TxMaxRetries)

	err = txManager.Do(ctx, func(ctx context.Context) error {
		if err := seedAdmin(ctx, adminRepo.NewRepository(wrappedDB), *adminEmail, *adminPassword); err != nil {
			return err
		}
		if err := seedRules(ctx, ruleRepo.NewRepository(wrappedDB)); err != nil {
			return err
		}
		return seedServices(ctx, serviceRepo.NewRepository(wrappedDB))
	})
	if err != nil {
		log.Fatal("Seed failed: %v", err)
	}

	log.Info("Seed completed: admin=%s", *adminEmail)
}

func seedAdmin(ctx context.Context, repo *adminRepo.Repository, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := repo.Upsert(ctx, &domain.AdminUser{Email: email, PasswordHash: hash}); err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}

// seedRules Пн-Пт 09:00-18:00, шаг 30 минут, одно место
func seedRules(ctx context.Context, repo *ruleRepo.Repository) error {
	for weekday := 1; weekday <= 5; weekday++ {
		_, err := repo.GetByWeekday(ctx, weekday)
		if err == nil {
			continue
		}
		if !errors.Is(err, ruleRepo.ErrRuleNotFound) {
			return fmt.Errorf("get rule weekday=%d: %w", weekday, err)
		}

		_, err = repo.Create(ctx, &domain.AvailabilityRule{
			DayOfWeek:   weekday,
			StartTime:   "09:00",
			EndTime:     "18:00",
			SlotStepMin: domain.DefaultSlotStepMin,
			Capacity:    domain.DefaultCapacity,
		})
		if err != nil {
			return fmt.Errorf("create rule weekday=%d: %w", weekday, err)
		}
	}
	return nil
}

func seedServices(ctx context.Context, repo *serviceRepo.Repository) error {
	existing, err := repo.List(ctx, true)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}

	names := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		names[s.Name] = struct{}{}
	}

	for i := range catalog {
		service := catalog[i]
		if _, ok := names[service.Name]; ok {
			continue
		}
		if _, err := repo.Create(ctx, &service); err != nil {
			return fmt.Errorf("create service %q: %w", service.Name, err)
		}
	}
	return nil
}
