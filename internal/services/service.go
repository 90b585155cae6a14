package services

import (
	"postbox/config"
	"postbox/internal/database"
)

type Service struct {
	Transaction *TransactionService
	Scheduler   *SchedulerService
	Storage     *StorageService
}

func New(db database.DB, config config.Config) (Service, error) {
	transactionService := NewTransactionService(db)
	schedulerService := NewSchedulerService()

	storageService, err := NewStorageService(config)
	if err != nil {
		return Service{}, err
	}

	return Service{
		Transaction: transactionService,
		Scheduler:   schedulerService,
		Storage:     storageService,
	}, nil
}
