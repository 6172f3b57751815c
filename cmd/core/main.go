package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	rest_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/core/adapter/in/rest"
	memory_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/core/usecase"
)

// SeedAccount 設定檔裡的開戶種子資料
type SeedAccount struct {
	Kind           string  `yaml:"kind"`
	Number         string  `yaml:"number"`
	Holder         string  `yaml:"holder"`
	OpeningBalance float64 `yaml:"openingBalance"`
}

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Accounts []SeedAccount `yaml:"accounts"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	// 2. 初始化 in-memory Ledger (Driven Adapter)
	ledger := memory_adapter.NewMutexLedger()

	// 3. 依設定檔種子開戶
	ctx := context.Background()
	for _, seed := range cfg.Accounts {
		acc, err := domain.NewAccount(domain.AccountKind(seed.Kind), seed.Number, seed.Holder, seed.OpeningBalance)
		if err != nil {
			log.Fatalf("Failed to open seed account %s: %v", seed.Number, err)
		}
		if err := ledger.AddAccount(ctx, acc); err != nil {
			log.Fatalf("Failed to add seed account %s: %v", seed.Number, err)
		}
	}
	log.Printf("Seeded %d accounts", len(cfg.Accounts))

	// 4. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(ledger)

	// 5. 初始化 REST Adapter (Driving Adapter)
	restServer := rest_adapter.NewServer(coreUseCase)

	// 6. 啟動 HTTP Server
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: restServer.Router(),
	}

	// Graceful Shutdown
	go func() {
		log.Printf("Starting HTTP server on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	return cfg
}
