package main

import (
	"log"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"parlayLeague/auth"
	"parlayLeague/common/logger"
	"parlayLeague/config"
	"parlayLeague/controllers"
	"parlayLeague/middleware"
	"parlayLeague/models"
	"parlayLeague/routers"
	"parlayLeague/scheduler"
	"parlayLeague/services/oddsService"
)

var db *gorm.DB

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init()
	defer logger.Sync()

	db, err = gorm.Open(mysql.Open(cfg.DB.URL+"?charset=utf8mb4&parseTime=True&loc=Local"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.League{},
		&models.LeagueMember{},
		&models.Matchup{},
		&models.Game{},
		&models.BettingOption{},
		&models.Bet{},
		&models.ParlayBet{},
		&models.ParlayLeg{},
		&models.ErrorLog{},
	)
	if err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	auth.Setup(cfg.Auth)
	middleware.SetupAuth(cfg.Auth)
	middleware.SetupCORS(cfg.CORS)

	provider := oddsService.NewProvider(cfg.Odds)
	controllers.Setup(db, provider)
	routers.Register(cfg)

	if cfg.Cron.Enabled {
		scheduler.SetupCron(db, provider)
		logger.Info("background sweeps scheduled")
	}

	logger.Info("server starting", zap.String("addr", cfg.HTTP.Addr))
	beego.BConfig.CopyRequestBody = true
	beego.Run(cfg.HTTP.Addr)
}
