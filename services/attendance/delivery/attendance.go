package delivery

import (
	"presensi/config"
	"presensi/domain"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type aHandler struct {
	uc domain.AttendanceUseCase
}

func NewAttendanceHandler(app *fiber.App, useCase domain.AttendanceUseCase) {
	handler := &aHandler{
		uc: useCase,
	}
	group := app.Group("/attendance")
	group.Post("/", handler.CreateAttendance)
	group.Get("/", handler.ListAttendance)
	group.Get("/user/:clerkId", handler.GetAttendanceByClerkID)
	group.Get("/:id", handler.GetAttendance)
	group.Put("/:id", handler.UpdateAttendance)
	group.Delete("/:id", handler.DeleteAttendance)
}

func (h *aHandler) CreateAttendance(c *fiber.Ctx) error {
	var payload domain.AttendanceCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "CreateAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	var validatorResponse []string
	_, err := govalidator.ValidateStruct(&payload)
	if err != nil {
		config.PrintLogInfo(&payload.UserID, fiber.StatusBadRequest, "CreateAttendance")
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

	attendance, err := h.uc.CreateAttendanceUC(c.Context(), &payload)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&payload.UserID, status, "CreateAttendance")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create attendance record",
		})
	}

	config.PrintLogInfo(&payload.UserID, fiber.StatusOK, "CreateAttendance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance record created successfully",
		"data":    attendance,
	})
}

func (h *aHandler) ListAttendance(c *fiber.Ctx) error {
	attendances, err := h.uc.GetAllAttendanceUC(c.Context())
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "ListAttendance")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get attendance records",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "ListAttendance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance records retrieved successfully",
		"data":    attendances,
	})
}

func (h *aHandler) GetAttendance(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "GetAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "converter failure",
			"message": "Invalid attendance id",
		})
	}

	attendance, err := h.uc.GetAttendanceByIDUC(c.Context(), id)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(nil, status, "GetAttendance")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get attendance record",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "GetAttendance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance record retrieved successfully",
		"data":    attendance,
	})
}

func (h *aHandler) UpdateAttendance(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "UpdateAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "converter failure",
			"message": "Invalid attendance id",
		})
	}

	var payload domain.AttendanceUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "UpdateAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	var validatorResponse []string
	_, err = govalidator.ValidateStruct(&payload)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "UpdateAttendance")
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

	attendance, err := h.uc.UpdateAttendanceStatusUC(c.Context(), id, payload.Status)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(nil, status, "UpdateAttendance")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to update attendance record",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "UpdateAttendance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance record updated successfully",
		"data":    attendance,
	})
}

func (h *aHandler) DeleteAttendance(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "DeleteAttendance")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "converter failure",
			"message": "Invalid attendance id",
		})
	}

	if err := h.uc.DeleteAttendanceUC(c.Context(), id); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(nil, status, "DeleteAttendance")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete attendance record",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "DeleteAttendance")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance record deleted successfully",
	})
}

func (h *aHandler) GetAttendanceByClerkID(c *fiber.Ctx) error {
	clerkID := c.Params("clerkId")

	attendances, err := h.uc.GetAttendanceByClerkIDUC(c.Context(), clerkID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&clerkID, status, "GetAttendanceByClerkID")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "No attendance records found for the given clerk ID",
		})
	}

	config.PrintLogInfo(&clerkID, fiber.StatusOK, "GetAttendanceByClerkID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Attendance records retrieved successfully",
		"data":    attendances,
	})
}
