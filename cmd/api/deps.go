package main

import (
	"context"
	"log"

	"centavo/internal/domain/reminder"
	"centavo/internal/domain/transaction"
	"centavo/internal/infrastructure/firebase"
	"centavo/internal/infrastructure/firestore"
	httphandlers "centavo/internal/interfaces/http"
	"centavo/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB       *firestore.DB
	Firebase *firebase.Client

	// Handlers
	TransactionHandler *httphandlers.TransactionHandler
	CategoryHandler    *httphandlers.CategoryHandler
	TagHandler         *httphandlers.TagHandler
	CardHandler        *httphandlers.CardHandler
	SummaryHandler     *httphandlers.SummaryHandler
	ProfileHandler     *httphandlers.ProfileHandler

	// Reminder service (for the scheduler job provider)
	ReminderService *reminder.Service
}

// NewDependencies initializes all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	// Connect to Firestore
	db, err := firestore.New(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		return nil, err
	}
	log.Println("Connected to Firestore")

	// Initialize repositories
	transactionRepo := firestore.NewTransactionRepository(db)
	categoryRepo := firestore.NewCategoryRepository(db)
	tagRepo := firestore.NewTagRepository(db)
	cardRepo := firestore.NewCardRepository(db)
	profileRepo := firestore.NewProfileRepository(db)

	// Initialize Firebase client. Tokens FCM reports as dead are removed
	// from whichever profile carries them.
	fbClient, err := firebase.NewClient(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile, profileRepo.RemoveDeviceToken)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Initialize domain services
	transactionService := transaction.NewService(transactionRepo)
	reminderService := reminder.NewService(profileRepo, transactionRepo, cardRepo, fbClient, cfg.Scheduler.ReminderLeadDays)

	return &Dependencies{
		DB:                 db,
		Firebase:           fbClient,
		TransactionHandler: httphandlers.NewTransactionHandler(transactionService),
		CategoryHandler:    httphandlers.NewCategoryHandler(categoryRepo),
		TagHandler:         httphandlers.NewTagHandler(tagRepo),
		CardHandler:        httphandlers.NewCardHandler(cardRepo),
		SummaryHandler:     httphandlers.NewSummaryHandler(transactionRepo, cardRepo, categoryRepo),
		ProfileHandler:     httphandlers.NewProfileHandler(profileRepo),
		ReminderService:    reminderService,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
