package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"zeroledger/internal/config"
	"zeroledger/internal/handlers"
	"zeroledger/internal/ledger"
	"zeroledger/internal/logger"
	"zeroledger/internal/middleware"
	"zeroledger/internal/snapshot"
	"zeroledger/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the snapshot archive and restore the latest compatible snapshot
	store, err := snapshot.Open(appConfig.SnapshotPath, appConfig.SnapshotKeep)
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warnf("snapshot store close error: %v", err)
		}
	}()

	book, err := restoreLedger(store)
	if err != nil {
		return err
	}

	// Register custom request validators
	validator.Register()

	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler(book)
	accountHandler := handlers.NewAccountHandler(book)
	categoryHandler := handlers.NewCategoryHandler(book)
	transactionHandler := handlers.NewTransactionHandler(book)
	monthHandler := handlers.NewMonthHandler(book)
	templateHandler := handlers.NewTemplateHandler(book)
	assetHandler := handlers.NewAssetHandler(book)
	reportHandler := handlers.NewReportHandler(book)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Persist a snapshot after every applied mutation
	if appConfig.Autosave {
		router.Use(autosave(book, store))
	}

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.POST("/:id/switch", budgetHandler.SwitchBudget)

	// Account routes
	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)
	accounts.GET("/:id/projection", accountHandler.GetLoanProjection)

	// Category group and category routes
	groups := v1.Group("/groups")
	groups.POST("", categoryHandler.CreateGroup)
	groups.GET("", categoryHandler.GetGroups)
	groups.PUT("/:id", categoryHandler.UpdateGroup)
	groups.DELETE("/:id", categoryHandler.DeleteGroup)

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.PUT("/:id/goal", categoryHandler.SetGoal)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.PUT("/:id/cleared", transactionHandler.SetCleared)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Month view and assignment routes
	months := v1.Group("/months/:month")
	months.GET("", monthHandler.GetMonth)
	months.POST("/switch", budgetHandler.SetCurrentMonth)
	months.PUT("/assignments", monthHandler.SetAssignment)
	months.POST("/move", monthHandler.MoveMoney)
	months.POST("/auto-assign", monthHandler.AutoAssign)
	months.GET("/spending", reportHandler.GetSpending)

	// Template routes
	templates := v1.Group("/templates")
	templates.POST("", templateHandler.CreateTemplate)
	templates.POST("/capture", templateHandler.CaptureTemplate)
	templates.GET("", templateHandler.GetTemplates)
	templates.PUT("/:id", templateHandler.UpdateTemplate)
	templates.DELETE("/:id", templateHandler.DeleteTemplate)
	templates.POST("/:id/apply", templateHandler.ApplyTemplate)

	// Asset routes
	assets := v1.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.GetAssets)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/net-worth", reportHandler.GetNetWorth)
	reports.POST("/payoff-simulation", reportHandler.SimulatePayoff)

	log.Infof("Starting ZeroLedger server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// restoreLedger loads the latest compatible snapshot, falling back to a
// fresh ledger when the archive is empty or holds an incompatible version.
func restoreLedger(store *snapshot.Store) (*ledger.Ledger, error) {
	log := logger.Get()

	snap, err := store.LoadLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap == nil {
		log.Info("No snapshot found; starting with a fresh ledger")
		return ledger.New(), nil
	}

	book, err := ledger.FromSnapshot(snap)
	if err != nil {
		log.Warnf("Discarding unusable snapshot: %v", err)
		return ledger.New(), nil
	}
	log.Infow("Restored ledger from snapshot",
		"budgets", len(snap.Budgets),
		"transactions", len(snap.Transactions),
	)
	return book, nil
}

// autosave persists a snapshot after any request that applied a mutation,
// detected through the ledger's version counter. Saves are best-effort:
// a failure is logged, never surfaced to the client.
func autosave(book *ledger.Ledger, store *snapshot.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		before := book.Version()
		c.Next()
		if book.Version() == before {
			return
		}
		if err := store.Save(book.Snapshot()); err != nil {
			logger.Get().Errorw("snapshot autosave failed", "error", err.Error())
		}
	}
}
