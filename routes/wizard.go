package routes

import (
	"voyago/handlers"
	"voyago/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterWizardRoutes registers all endpoints for the purchase wizard engine.
func RegisterWizardRoutes(r *gin.Engine, h *handlers.WizardHandler) {
	r.GET("/api/bookings/:bookingID", h.GetBooking)

	api := r.Group("/api/wizard")
	{
		api.POST("/session", h.StartSession)

		// All session operations require the guest token issued at start.
		session := api.Group("/session/:sessionID")
		session.Use(middleware.SessionAuthMiddleware())

		session.GET("", h.GetSession)
		session.DELETE("", h.CancelSession)
		session.POST("/end", h.EndSession)

		// Step 1: date and participants.
		session.PUT("/departure", h.SelectDeparture)
		session.PUT("/participants", h.SetParticipants)

		// Step 2: add-ons.
		session.POST("/addons", h.AddAddon)
		session.DELETE("/addons/:kind/:id", h.RemoveAddon)
		session.DELETE("/addons", h.ClearAddons)

		// Step 3: travelers.
		session.PUT("/travelers/:index", h.UpdateTraveler)
		session.POST("/travelers/copy", h.CopyTraveler)
		session.PUT("/travelers/:index/lead", h.SetLeadTraveler)

		// Step 4: payment and extras.
		session.POST("/coupon", h.ApplyCoupon)
		session.DELETE("/coupon", h.RemoveCoupon)
		session.PUT("/payment-plan", h.SetPaymentPlan)
		session.PUT("/special-requests", h.SetSpecialRequests)
		session.PUT("/terms", h.AcceptTerms)

		// Navigation.
		session.POST("/steps/next", h.NextStep)
		session.POST("/steps/previous", h.PreviousStep)
		session.POST("/steps/goto", h.GoToStep)
		session.POST("/steps/complete", h.CompleteStep)

		// Submission.
		session.POST("/submit", h.Submit)
	}
}
