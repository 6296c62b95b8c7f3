package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "github.com/Roonpandit/Library-Management/internal/adapter/http"
	mw "github.com/Roonpandit/Library-Management/internal/adapter/middleware"
	"github.com/Roonpandit/Library-Management/internal/adapter/repository/mysql"
	"github.com/Roonpandit/Library-Management/internal/config"
	"github.com/Roonpandit/Library-Management/internal/infrastructure/cache"
	"github.com/Roonpandit/Library-Management/internal/infrastructure/db"
	bookuc "github.com/Roonpandit/Library-Management/internal/usecase/book"
	borrowuc "github.com/Roonpandit/Library-Management/internal/usecase/borrow"
	useruc "github.com/Roonpandit/Library-Management/internal/usecase/user"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		sugar.Fatalw("configuration invalid", "error", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		sugar.Fatalw("database connection failed", "error", err)
	}
	if err := db.Migrate(gdb); err != nil {
		sugar.Fatalw("migration failed", "error", err)
	}
	sugar.Infow("database connected", "db", cfg.MySQLDB)

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		sugar.Fatalw("redis connection failed", "addr", cfg.RedisAddr, "error", err)
	}

	books := mysql.NewBookRepository(gdb)
	borrows := mysql.NewBorrowRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	borrowUC := borrowuc.NewUsecase(borrows, guow, sugar)
	bookUC := bookuc.NewUsecase(books, borrows, sugar)
	userUC := useruc.NewUsecase(users, guow, sugar)

	h := httpadp.NewHandler()
	borrowH := httpadp.NewBorrowHandler(borrowUC)
	bookH := httpadp.NewBookHandler(bookUC)
	userH := httpadp.NewUserHandler(userUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api", mw.Identity())
	idemp := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// catalog
	api.GET("/books", bookH.List)
	api.GET("/books/:id", bookH.Get)
	api.POST("/books", bookH.Create, mw.AdminOnly())
	api.PUT("/books/:id", bookH.Update, mw.AdminOnly())
	api.DELETE("/books/:id", bookH.Delete, mw.AdminOnly())

	// loan lifecycle
	api.POST("/borrows", borrowH.Borrow, idemp)
	api.PUT("/borrows/:id/return", borrowH.Return, idemp)
	api.PUT("/borrows/:id/bill", borrowH.GenerateBill, mw.AdminOnly(), idemp)
	api.PUT("/borrows/:id/payment", borrowH.MarkPaid, mw.AdminOnly(), idemp)
	api.GET("/borrows", borrowH.ListAll, mw.AdminOnly())
	api.GET("/borrows/user", borrowH.ListMine)
	api.GET("/borrows/overdue", borrowH.ListOverdue, mw.AdminOnly())
	api.GET("/borrows/pending-payment", borrowH.ListPendingPayment, mw.AdminOnly())

	// accounts & notifications
	api.GET("/users", userH.List, mw.AdminOnly())
	api.GET("/users/blocked", userH.ListBlocked, mw.AdminOnly())
	api.GET("/users/active", userH.ListActive, mw.AdminOnly())
	api.GET("/users/:id", userH.Get, mw.AdminOnly())
	api.PUT("/users/:id/block", userH.ToggleBlock, mw.AdminOnly())
	api.POST("/users/:id/reminder", userH.SendReminder, mw.AdminOnly())
	api.GET("/notifications", userH.ListNotifications)
	api.PUT("/notifications/:id/read", userH.MarkNotificationRead)

	addr := ":" + cfg.AppPort
	sugar.Infow("listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
