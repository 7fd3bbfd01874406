package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	bookingRepo "voyago/database/repository/booking"
	"voyago/models"
	"voyago/services/catalog"
	"voyago/services/coupon"
	"voyago/services/wizard"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the purchase wizard over HTTP. Each endpoint maps to
// one engine operation; the handler does the prerequisite checks the step
// navigator deliberately does not.
type WizardHandler struct {
	Manager     *wizard.Manager
	CatalogSvc  catalog.CatalogService
	CouponSvc   coupon.CouponService
	BookingRepo bookingRepo.BookingRepository
	Logger      *zap.Logger
	TokenTTL    time.Duration
	MaxReqLen   int
}

func NewWizardHandler(manager *wizard.Manager, catalogSvc catalog.CatalogService,
	couponSvc coupon.CouponService, bookings bookingRepo.BookingRepository,
	logger *zap.Logger, tokenTTL time.Duration, maxReqLen int) *WizardHandler {
	return &WizardHandler{
		Manager:     manager,
		CatalogSvc:  catalogSvc,
		CouponSvc:   couponSvc,
		BookingRepo: bookings,
		Logger:      logger,
		TokenTTL:    tokenTTL,
		MaxReqLen:   maxReqLen,
	}
}

// respondError maps engine and collaborator errors onto HTTP statuses.
func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var validationErr *wizard.ValidationError
	var collaboratorErr *wizard.CollaboratorError
	var rejection *coupon.RejectionError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", validationErr.Message)
	case errors.As(err, &collaboratorErr):
		utils.JSONError(c, http.StatusBadGateway, "upstream failure", collaboratorErr.Message)
	case errors.As(err, &rejection):
		utils.JSONError(c, http.StatusUnprocessableEntity, "coupon rejected", rejection.Message)
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found", "")
	case errors.Is(err, wizard.ErrIncompatibleDraft):
		utils.JSONError(c, http.StatusGone, "stored draft was incompatible and has been discarded", "")
	default:
		h.Logger.Error("wizard operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", err.Error())
	}
}

// session resolves the session named in the URL, restoring it from its draft
// when it is not live in this process.
func (h *WizardHandler) session(c *gin.Context) (*wizard.Session, bool) {
	sessionID := c.Param("sessionID")
	session, err := h.Manager.Resume(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	return session, true
}

// StartSession handles POST /api/wizard/session.
func (h *WizardHandler) StartSession(c *gin.Context) {
	session := h.Manager.Start(c.Request.Context())

	token, err := utils.GenerateSessionToken(session.ID(), h.TokenTTL)
	if err != nil {
		h.Logger.Error("failed to issue session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start session", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"sessionID": session.ID(),
		"token":     token,
		"state":     session.Snapshot(),
	})
}

// GetSession handles GET /api/wizard/session/:sessionID.
func (h *WizardHandler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// SelectDeparture handles PUT /api/wizard/session/:sessionID/departure.
func (h *WizardHandler) SelectDeparture(c *gin.Context) {
	var input struct {
		PackageID       string `json:"packageId" binding:"required"`
		DepartureDateID string `json:"departureDateId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}

	date, err := h.CatalogSvc.DepartureDate(input.DepartureDateID)
	if err != nil {
		h.respondError(c, wizard.NewCollaboratorError("departure date lookup failed: "+err.Error()))
		return
	}
	if err := session.SelectDeparture(input.PackageID, *date); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// SetParticipants handles PUT /api/wizard/session/:sessionID/participants.
func (h *WizardHandler) SetParticipants(c *gin.Context) {
	var input struct {
		Count int `json:"count" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.SetParticipants(input.Count); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// UpdateTraveler handles PUT /api/wizard/session/:sessionID/travelers/:index.
func (h *WizardHandler) UpdateTraveler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid traveler index", c.Param("index"))
		return
	}
	var upd models.TravelerUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.UpdateTraveler(index, upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// CopyTraveler handles POST /api/wizard/session/:sessionID/travelers/copy.
func (h *WizardHandler) CopyTraveler(c *gin.Context) {
	var input struct {
		FromIndex int `json:"fromIndex"`
		ToIndex   int `json:"toIndex"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.CopyTravelerData(input.FromIndex, input.ToIndex); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// SetLeadTraveler handles PUT /api/wizard/session/:sessionID/travelers/:index/lead.
func (h *WizardHandler) SetLeadTraveler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid traveler index", c.Param("index"))
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.SetLeadTraveler(index); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// AddAddon handles POST /api/wizard/session/:sessionID/addons.
func (h *WizardHandler) AddAddon(c *gin.Context) {
	var input struct {
		Kind models.AddonKind `json:"kind" binding:"required"`
		ID   string           `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}

	entry, err := h.CatalogSvc.ResolveAddon(models.AddonKey{Kind: input.Kind, ID: input.ID})
	if err != nil {
		h.respondError(c, wizard.NewCollaboratorError("add-on lookup failed: "+err.Error()))
		return
	}
	if err := session.AddAddon(*entry); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// RemoveAddon handles DELETE /api/wizard/session/:sessionID/addons/:kind/:id.
func (h *WizardHandler) RemoveAddon(c *gin.Context) {
	key := models.AddonKey{
		Kind: models.AddonKind(c.Param("kind")),
		ID:   c.Param("id"),
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.RemoveAddon(key); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// ClearAddons handles DELETE /api/wizard/session/:sessionID/addons.
func (h *WizardHandler) ClearAddons(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.ClearAddons()
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// ApplyCoupon handles POST /api/wizard/session/:sessionID/coupon.
func (h *WizardHandler) ApplyCoupon(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}

	// Validate against the order amount before any discount.
	snapshot := session.Snapshot()
	orderAmount := snapshot.Pricing.Subtotal + snapshot.Pricing.AddonsTotal
	resolved, err := h.CouponSvc.Validate(input.Code, orderAmount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := session.ApplyCoupon(*resolved); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// RemoveCoupon handles DELETE /api/wizard/session/:sessionID/coupon.
func (h *WizardHandler) RemoveCoupon(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.RemoveCoupon()
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// SetPaymentPlan handles PUT /api/wizard/session/:sessionID/payment-plan.
func (h *WizardHandler) SetPaymentPlan(c *gin.Context) {
	var input struct {
		Plan string `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.SetPaymentPlan(input.Plan); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// SetSpecialRequests handles PUT /api/wizard/session/:sessionID/special-requests.
func (h *WizardHandler) SetSpecialRequests(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.SetSpecialRequests(input.Text, h.MaxReqLen); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// AcceptTerms handles PUT /api/wizard/session/:sessionID/terms.
func (h *WizardHandler) AcceptTerms(c *gin.Context) {
	var input struct {
		Accepted bool `json:"accepted"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.AcceptTerms(input.Accepted)
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// NextStep handles POST /api/wizard/session/:sessionID/steps/next.
func (h *WizardHandler) NextStep(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.Next()
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// PreviousStep handles POST /api/wizard/session/:sessionID/steps/previous.
func (h *WizardHandler) PreviousStep(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.Previous()
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// GoToStep handles POST /api/wizard/session/:sessionID/steps/goto.
func (h *WizardHandler) GoToStep(c *gin.Context) {
	var input struct {
		Step int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.GoTo(input.Step); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// CompleteStep handles POST /api/wizard/session/:sessionID/steps/complete.
func (h *WizardHandler) CompleteStep(c *gin.Context) {
	var input struct {
		Step int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.Complete(input.Step); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": session.Snapshot()})
}

// Submit handles POST /api/wizard/session/:sessionID/submit. The final state
// is handed to the booking-creation collaborator at the step 4→5 transition;
// on success the wizard advances to confirmation and the draft is erased.
func (h *WizardHandler) Submit(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	booking, err := wizard.BuildBooking(session.Snapshot())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.BookingRepo.Create(booking); err != nil {
		h.Logger.Error("booking submission failed",
			zap.String("sessionID", session.ID()), zap.Error(err))
		h.respondError(c, wizard.NewCollaboratorError("booking submission failed: "+err.Error()))
		return
	}
	if err := h.CouponSvc.RecordUse(booking.CouponCode); err != nil {
		// The booking already exists; usage accounting must not fail it.
		h.Logger.Warn("failed to record coupon use",
			zap.String("code", booking.CouponCode), zap.Error(err))
	}

	session.Complete(models.StepPayment)
	session.GoTo(models.StepConfirmation)
	session.Complete(models.StepConfirmation)

	// Terminal step reached: erase the draft.
	if err := h.Manager.Discard(context.Background(), session.ID()); err != nil {
		h.Logger.Warn("failed to discard session after submission",
			zap.String("sessionID", session.ID()), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// GetBooking handles GET /api/bookings/:bookingID, the confirmation lookup
// clients use after a successful submission.
func (h *WizardHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	booking, err := h.BookingRepo.GetByID(bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", bookingID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// EndSession handles POST /api/wizard/session/:sessionID/end. One final
// checkpoint is written synchronously before the live session is dropped.
func (h *WizardHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	h.Manager.End(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// CancelSession handles DELETE /api/wizard/session/:sessionID. The session is
// destroyed and its draft erased.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Manager.Discard(c.Request.Context(), sessionID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}
