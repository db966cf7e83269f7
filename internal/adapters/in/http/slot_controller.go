package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/in"
	"github.com/suchimauz/template-slots-generator/internal/core/services/slot_generator_service"
	"github.com/suchimauz/template-slots-generator/internal/utils"
)

type SlotController struct {
	slotsUseCase   in.SlotMaterializerUseCase
	bookingUseCase in.BookingUseCase
	cfg            *config.Config
}

func NewSlotController(slotsUseCase in.SlotMaterializerUseCase, bookingUseCase in.BookingUseCase, cfg *config.Config) *SlotController {
	return &SlotController{
		slotsUseCase:   slotsUseCase,
		bookingUseCase: bookingUseCase,
		cfg:            cfg,
	}
}

func (c *SlotController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.POST("/slots/materialize", c.materializeSlots)
		api.GET("/templates/relevant", c.relevantTemplates)
		api.GET("/bookings", c.listBookings)
		api.POST("/bookings", c.book)
		api.DELETE("/bookings", c.cancel)
	}
}

type MaterializeSlotsRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	UserID    string `json:"userId"`
	Debug     bool   `json:"debug"`
}

type BookRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
	SlotID     string `json:"slotId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

func (c *SlotController) materializeSlots(ctx *gin.Context) {
	var req MaterializeSlotsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format"})
		return
	}

	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format"})
		return
	}

	if endDate.Before(startDate) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "End date is before start date"})
		return
	}

	var slots []domain.TimeSlot
	var debugInfo []domain.DebugInfo

	// С userId накладываем статусы брони, без него все слоты свободны
	if req.UserID != "" {
		slots, debugInfo, err = c.slotsUseCase.MaterializeSlotsForUser(ctx.Request.Context(), startDate, endDate, req.UserID)
	} else {
		slots, debugInfo, err = c.slotsUseCase.MaterializeSlots(ctx.Request.Context(), startDate, endDate)
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"slots": slots}
	if req.Debug {
		response["debug"] = debugInfo
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *SlotController) relevantTemplates(ctx *gin.Context) {
	templates, err := c.slotsUseCase.RelevantTemplates(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (c *SlotController) listBookings(ctx *gin.Context) {
	bookings, err := c.bookingUseCase.ListBookings(ctx.Request.Context(), ctx.Query("userId"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (c *SlotController) book(ctx *gin.Context) {
	var req BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	// Идентичность должна декодироваться в тройку (templateId, date, slotPatternId)
	slotTemplateID, slotDate, _, err := slot_generator_service.DecodeSlotID(req.SlotID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if slotTemplateID != req.TemplateID || !utils.StartCurrentDay(slotDate).Equal(utils.StartCurrentDay(date)) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Slot identity does not match request"})
		return
	}

	// Презентационная политика: слот должен существовать на эту дату и еще не начаться
	slots, _, err := c.slotsUseCase.MaterializeSlots(ctx.Request.Context(), slotDate, slotDate)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	found := false
	for _, slot := range slots {
		if slot.ID != req.SlotID {
			continue
		}
		found = true
		if !slot_generator_service.IsBookable(slot, time.Now().In(config.TimeZone)) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Slot is not bookable anymore"})
			return
		}
		break
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Slot does not exist for this date"})
		return
	}

	booking, err := c.bookingUseCase.Book(ctx.Request.Context(), req.TemplateID, req.SlotID, date, req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyBooked) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"booking": booking})
}

func (c *SlotController) cancel(ctx *gin.Context) {
	slotID := ctx.Query("slotId")
	userID := ctx.Query("userId")
	if slotID == "" || userID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "slotId and userId are required"})
		return
	}

	if err := c.bookingUseCase.Cancel(ctx.Request.Context(), slotID, userID); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *SlotController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
