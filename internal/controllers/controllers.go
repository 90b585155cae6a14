package controllers

import (
	"postbox/config"
	"postbox/internal/database"
	"postbox/internal/events"
	"postbox/internal/repositories"
	"postbox/internal/services"

	cleaningController "postbox/internal/controllers/cleaning"
	dashboardController "postbox/internal/controllers/dashboard"
	mailboxController "postbox/internal/controllers/mailboxes"
)

type Controllers struct {
	Mailbox   mailboxController.MailboxControllerInterface
	Cleaning  cleaningController.CleaningControllerInterface
	Dashboard dashboardController.DashboardControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	eventBus *events.EventBus,
	config config.Config,
	db database.DB,
) Controllers {
	return Controllers{
		Mailbox:   mailboxController.New(repos, services, eventBus, config, db),
		Cleaning:  cleaningController.New(repos, services, eventBus, config, db),
		Dashboard: dashboardController.New(repos, config, db),
	}
}
