package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/httpresp"
	"github.com/freshlane/carwash-scheduler/internal/middleware"
	ucNotification "github.com/freshlane/carwash-scheduler/internal/usecase/notification"
)

// ======================================================
// HANDLER
// ======================================================

type NotificationHandler struct {
	create    *ucNotification.CreateNotification
	list      *ucNotification.ListNotifications
	markRead  *ucNotification.MarkRead
	markAll   *ucNotification.MarkAllRead
	delete    *ucNotification.DeleteNotification
	deleteAll *ucNotification.DeleteAllNotifications
}

func NewNotificationHandler(
	create *ucNotification.CreateNotification,
	list *ucNotification.ListNotifications,
	markRead *ucNotification.MarkRead,
	markAll *ucNotification.MarkAllRead,
	del *ucNotification.DeleteNotification,
	deleteAll *ucNotification.DeleteAllNotifications,
) *NotificationHandler {
	return &NotificationHandler{
		create:    create,
		list:      list,
		markRead:  markRead,
		markAll:   markAll,
		delete:    del,
		deleteAll: deleteAll,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateNotificationRequest struct {
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Link      string         `json:"link"`
	BookingID string         `json:"booking_id"`
	Metadata  datatypes.JSON `json:"metadata"`
}

// ======================================================
// LIST
// ======================================================

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	unreadOnly := c.Query("unread") == "true"

	res, err := h.list.Execute(c.Request.Context(), userID, limit, skip, unreadOnly)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// CREATE
// ======================================================

func (h *NotificationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed JSON body.")
		return
	}

	n, err := h.create.Execute(c.Request.Context(), ucNotification.CreateNotificationInput{
		UserID:    userID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Link:      req.Link,
		BookingID: req.BookingID,
		Metadata:  req.Metadata,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, n)
}

// ======================================================
// MARK READ
// ======================================================

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	n, err := h.markRead.Execute(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, n)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	modified, err := h.markAll.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"modified_count": modified})
}

// ======================================================
// DELETE
// ======================================================

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	if err := h.delete.Execute(c.Request.Context(), id, userID); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

func (h *NotificationHandler) DeleteAll(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	deleted, err := h.deleteAll.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted_count": deleted})
}
