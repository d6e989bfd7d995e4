// Package routes wires repositories, services, and handlers together and
// registers the API routes.
package routes

import (
	"walletledger/internal/handlers"
	"walletledger/internal/repositories"
	"walletledger/internal/repositories/cache"
	"walletledger/internal/services/ledger"
	"walletledger/internal/services/transaction"
	"walletledger/internal/services/wallet"
	"walletledger/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes builds the service graph and registers all entity routes
// under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService) {
	walletRepo := repositories.NewWalletRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)

	validator := validation.New(transactionRepo)

	walletService := wallet.NewService(walletRepo, validator, cacheService)
	transactionService := transaction.NewService(transactionRepo, validator, cacheService)
	ledgerService := ledger.NewService(ledgerRepo, walletRepo, transactionRepo, validator, cacheService)

	walletHandler := handlers.NewWalletHandler(walletService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	wallets := api.Group("/wallets")
	wallets.Get("/", walletHandler.ListWallets)
	wallets.Post("/", walletHandler.CreateWallet)
	wallets.Get("/:id", walletHandler.GetWallet)
	wallets.Put("/:id", walletHandler.UpdateWallet)
	wallets.Delete("/:id", walletHandler.DeleteWallet)

	transactions := api.Group("/transactions")
	transactions.Get("/", transactionHandler.ListTransactions)
	transactions.Post("/", transactionHandler.CreateTransaction)
	transactions.Get("/:id", transactionHandler.GetTransaction)
	transactions.Put("/:id", transactionHandler.UpdateTransaction)
	transactions.Delete("/:id", transactionHandler.DeleteTransaction)

	ledgers := api.Group("/ledgers")
	ledgers.Get("/", ledgerHandler.ListLedgers)
	ledgers.Post("/", ledgerHandler.CreateLedger)
	ledgers.Get("/:id", ledgerHandler.GetLedger)
	ledgers.Put("/:id", ledgerHandler.UpdateLedger)
	ledgers.Delete("/:id", ledgerHandler.DeleteLedger)
}
