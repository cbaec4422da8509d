package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yugamki_backend/internals/features/events/events/dto"
	"yugamki_backend/internals/features/events/events/model"
	"yugamki_backend/internals/features/events/events/service"
	userModel "yugamki_backend/internals/features/users/user/model"
	helper "yugamki_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// POST /api/a/events
//
// Who may create depends on the event shape, so the role gate lives here
// instead of the route table.
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	if err := helper.EnsureRoles(c, service.CreatorRoles(req.EventType, req.EventIsWorkshop)...); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := service.ValidateSchedule(req.EventStartDate, req.EventEndDate); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"event_start_date": {err.Error()}})
	}

	event := req.ToModel(userID)
	if err := ctrl.DB.Create(event).Error; err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event submitted for approval", dto.ToEventResponse(event))
}

// PATCH /api/a/events/:id
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	if event.EventCreatedBy != userID {
		if err := helper.EnsureRoles(c, service.CreatorRoles(event.EventType, event.EventIsWorkshop)...); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if service.IsLocked(event.EventStatus) {
		return helper.JsonError(c, fiber.StatusConflict, "Event is locked after approval")
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	updates := map[string]interface{}{}
	if req.EventTitle != nil {
		updates["event_title"] = *req.EventTitle
	}
	if req.EventDescription != nil {
		updates["event_description"] = *req.EventDescription
	}
	if req.EventCategory != nil {
		updates["event_category"] = *req.EventCategory
	}
	if req.EventDomain != nil {
		updates["event_domain"] = *req.EventDomain
	}
	if req.EventVenue != nil {
		updates["event_venue"] = *req.EventVenue
	}
	if req.EventFeePerPerson != nil {
		updates["event_fee_per_person"] = *req.EventFeePerPerson
	}
	if req.EventFeePerTeam != nil {
		updates["event_fee_per_team"] = *req.EventFeePerTeam
	}
	if req.EventMaxRegistrations != nil {
		updates["event_max_registrations"] = *req.EventMaxRegistrations
	}

	start, end := event.EventStartDate, event.EventEndDate
	if req.EventStartDate != nil {
		start = *req.EventStartDate
		updates["event_start_date"] = start
	}
	if req.EventEndDate != nil {
		end = *req.EventEndDate
		updates["event_end_date"] = end
	}
	if req.EventStartDate != nil || req.EventEndDate != nil {
		if err := service.ValidateSchedule(start, end); err != nil {
			return helper.JsonValidationError(c, map[string][]string{"event_start_date": {err.Error()}})
		}
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&event).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update event %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload event")
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToEventResponse(&event))
}

// PATCH /api/a/events/:id/status
//
// Approval and publishing. One allow-list for every event shape; a
// manager can be assigned alongside any transition.
func (ctrl *EventController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.EventStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	if err := helper.EnsureRoles(c, service.StatusChangeRoles...); err != nil {
		return helper.FromFiberError(c, err)
	}

	if !service.CanTransition(event.EventStatus, req.EventStatus) {
		return helper.JsonError(c, fiber.StatusConflict,
			"Cannot move event from "+event.EventStatus+" to "+req.EventStatus)
	}

	updates := map[string]interface{}{"event_status": req.EventStatus}
	if req.EventManagerID != nil {
		var manager userModel.UserModel
		if err := ctrl.DB.First(&manager, "id = ?", *req.EventManagerID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Manager user not found")
		}
		updates["event_manager_id"] = *req.EventManagerID
	}

	if err := ctrl.DB.Model(&event).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] transition event %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event status")
	}

	event.EventStatus = req.EventStatus
	if mid, ok := updates["event_manager_id"].(uuid.UUID); ok {
		event.EventManagerID = &mid
	}
	return helper.JsonUpdated(c, "Event status updated", dto.ToEventResponse(&event))
}

// DELETE /api/a/events/:id
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	// Creator or ADMIN, any status.
	if event.EventCreatedBy != userID && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the creator may delete this event")
	}

	if err := ctrl.DB.Delete(&event).Error; err != nil {
		log.Printf("[ERROR] delete event %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}

// GET /api/public/events
//
// Public catalog. Only PUBLISHED events are visible here.
func (ctrl *EventController) ListPublishedEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EventModel{}).Where("event_status = ?", model.StatusPublished)
	q = applyCatalogFilters(c, q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := q.Order("event_start_date ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}
	return helper.JsonList(c, "ok", dto.ToEventResponseList(events), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/public/events/:id
func (ctrl *EventController) GetPublishedEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ? AND event_status = ?", id, model.StatusPublished).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonOK(c, "ok", dto.ToEventResponse(&event))
}

// GET /api/a/events?status=&type=&is_workshop=&category=&q=
func (ctrl *EventController) ListAllEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EventModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("event_status = ?", status)
	}
	q = applyCatalogFilters(c, q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := q.Order("event_created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}
	return helper.JsonList(c, "ok", dto.ToEventResponseList(events), helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func applyCatalogFilters(c *fiber.Ctx, q *gorm.DB) *gorm.DB {
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("event_type = ?", t)
	}
	if ws := strings.TrimSpace(c.Query("is_workshop")); ws != "" {
		q = q.Where("event_is_workshop = ?", ws == "true")
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("event_category = ?", cat)
	}
	if dom := strings.TrimSpace(c.Query("domain")); dom != "" {
		q = q.Where("event_domain = ?", dom)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(event_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	return q
}
