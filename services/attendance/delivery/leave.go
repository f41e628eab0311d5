package delivery

import (
	"presensi/config"
	"presensi/domain"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type lHandler struct {
	uc domain.LeaveUseCase
}

func NewLeaveHandler(app *fiber.App, useCase domain.LeaveUseCase) {
	handler := &lHandler{
		uc: useCase,
	}
	group := app.Group("/leave")
	group.Post("/", handler.ApplyLeave)
	group.Get("/", handler.ListLeaves)
	group.Get("/user/:clerkId", handler.GetLeavesForIdentity)
	group.Get("/:id", handler.GetLeave)
	group.Put("/:id", handler.UpdateLeaveStatus)
	group.Delete("/:id", handler.DeleteLeave)
}

func (h *lHandler) ApplyLeave(c *fiber.Ctx) error {
	var payload domain.LeaveApplyPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "ApplyLeave")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	var validatorResponse []string
	_, err := govalidator.ValidateStruct(&payload)
	if err != nil {
		config.PrintLogInfo(&payload.StudentID, fiber.StatusBadRequest, "ApplyLeave")
		validationErrors := govalidator.ErrorsByField(err)
		for i := range validationErrors {
			validatorResponse = append(validatorResponse, validationErrors[i])
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validatorResponse,
			"message": "Invalid request body",
		})
	}

	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		config.PrintLogInfo(&payload.StudentID, fiber.StatusBadRequest, "ApplyLeave")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "date must be YYYY-MM-DD",
			"message": "Invalid request body",
		})
	}

	leave := domain.Leave{
		StudentID:        payload.StudentID,
		TeacherSubjectID: payload.TeacherSubjectID,
		Date:             date,
		HalfDay:          payload.HalfDay,
		Reason:           payload.Reason,
	}

	if err := h.uc.ApplyLeaveUC(c.Context(), &leave); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&payload.StudentID, status, "ApplyLeave")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to apply for leave",
		})
	}

	config.PrintLogInfo(&payload.StudentID, fiber.StatusOK, "ApplyLeave")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Leave applied successfully",
		"data":    leave,
	})
}

func (h *lHandler) ListLeaves(c *fiber.Ctx) error {
	leaves, err := h.uc.GetAllLeaveUC(c.Context())
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "ListLeaves")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get leave requests",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "ListLeaves")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Leave requests retrieved successfully",
		"data":    leaves,
	})
}

func (h *lHandler) GetLeavesForIdentity(c *fiber.Ctx) error {
	clerkID := c.Params("clerkId")

	leaves, err := h.uc.GetLeavesForIdentityUC(c.Context(), clerkID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&clerkID, status, "GetLeavesForIdentity")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get leave requests",
		})
	}

	config.PrintLogInfo(&clerkID, fiber.StatusOK, "GetLeavesForIdentity")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Leave requests retrieved successfully",
		"data":    leaves,
	})
}

func (h *lHandler) GetLeave(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "GetLeave")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "converter failure",
			"message": "Invalid leave id",
		})
	}

	leave, err := h.uc.GetLeaveByIDUC(c.Context(), id)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(nil, status, "GetLeave")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get leave request",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "GetLeave")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Leave request retrieved successfully",
		"data":    leave,
	})
}

func (h *lHandler) UpdateLeaveStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "UpdateLeaveStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "converter failure",
			"message": "Invalid leave id",
		})
	}

	var payload domain.LeaveUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "UpdateLeaveStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	var validatorResponse []string
	_, err = govalidator.ValidateStruct(&payload)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "UpdateLeaveStatus")
		validationErrors := govalidator.ErrorsByField(err)
		for i := range validationErrors {
			validatorResponse = append(validatorResponse, validationErrors[i])
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validatorResponse,
			"message": "Invalid request body",
		})
	}

	leave, err := h.uc.UpdateLeaveStatusUC(c.Context(), id, payload.Status)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(nil, status, "UpdateLeaveStatus")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to update leave status",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "UpdateLeaveStatus")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Leave status updated successfully",
		"data":    leave,
	})
}

func (h *lHandler) DeleteLeave(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "DeleteLeave")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "converter failure",
			"message": "Invalid leave id",
		})
	}

	if err := h.uc.DeleteLeaveUC(c.Context(), id); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(nil, status, "DeleteLeave")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete leave request",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "DeleteLeave")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Leave request deleted successfully",
	})
}
