package handlers

import (
	"arakucamp/services/booking"
	"arakucamp/services/content"
	"arakucamp/services/support"
)

// Package-level services, wired once at startup before routes are registered.
var (
	WizardService  booking.BookingWizardService
	HistoryService booking.HistoryService
	SupportService support.SupportService
	ContentService content.ContentService
)

// Init binds the handler package to its services.
func Init(
	wizard booking.BookingWizardService,
	history booking.HistoryService,
	supportSvc support.SupportService,
	contentSvc content.ContentService,
) {
	WizardService = wizard
	HistoryService = history
	SupportService = supportSvc
	ContentService = contentSvc
}
