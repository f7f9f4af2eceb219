package postgres

import (
	"log"

	"github.com/fundflow/collection-service/internal/config"
	"github.com/fundflow/collection-service/internal/infrastructure/logger"
	"github.com/fundflow/collection-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.CollectionConfig) *gorm.DB {
	dsn := cfg.CollectionDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.CollectionModel{}, &models.DonationModel{}, &logger.DonationReconciledEvent{}, &logger.DonationFailedEvent{})

	return db
}
