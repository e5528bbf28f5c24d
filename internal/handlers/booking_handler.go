package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/httpresp"
	"github.com/freshlane/carwash-scheduler/internal/middleware"
	ucBooking "github.com/freshlane/carwash-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucBooking.CreateBooking
	update *ucBooking.UpdateBooking
	cancel *ucBooking.CancelBooking
	list   *ucBooking.ListBookings
	delete *ucBooking.DeleteBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	cancel *ucBooking.CancelBooking,
	list *ucBooking.ListBookings,
	del *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		update: update,
		cancel: cancel,
		list:   list,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID     uint   `json:"service_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed JSON body.")
		return
	}

	summary, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:        userID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, summary)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bs, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, bs)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var patch ucBooking.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed JSON body.")
		return
	}

	b, err := h.update.Execute(c.Request.Context(), id, userID, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	b, err := h.cancel.Execute(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	if err := h.delete.Execute(c.Request.Context(), id, userID); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}
