package delivery

import (
	"presensi/config"
	"presensi/domain"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type uHandler struct {
	uc domain.UserUseCase
}

func NewUserHandler(app *fiber.App, useCase domain.UserUseCase) {
	handler := &uHandler{
		uc: useCase,
	}
	group := app.Group("/auth")
	group.Post("/create-user", handler.CreateUser)
	group.Delete("/delete-user/:clerkId", handler.DeleteUser)
	group.Get("/users/students", handler.GetStudents)
	group.Get("/users/teachers", handler.GetTeachers)
	group.Get("/user/:clerkId", handler.GetUser)
	group.Post("/assign-subject/:teacherId", handler.AssignSubject)
}

func (h *uHandler) CreateUser(c *fiber.Ctx) error {
	var user domain.User
	if err := c.BodyParser(&user); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "CreateUser")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	// Identity provider payloads may omit the role, students are the default.
	if user.Role == "" {
		user.Role = domain.RoleStudent
	}

	var validatorResponse []string
	_, err := govalidator.ValidateStruct(&user)
	if err != nil {
		config.PrintLogInfo(&user.ClerkID, fiber.StatusBadRequest, "CreateUser")
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

	if err := h.uc.CreateUserUC(c.Context(), &user); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&user.ClerkID, status, "CreateUser")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to create user",
		})
	}

	config.PrintLogInfo(&user.ClerkID, fiber.StatusOK, "CreateUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

func (h *uHandler) DeleteUser(c *fiber.Ctx) error {
	clerkID := c.Params("clerkId")

	if err := h.uc.DeleteUserUC(c.Context(), clerkID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&clerkID, status, "DeleteUser")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to delete user",
		})
	}

	config.PrintLogInfo(&clerkID, fiber.StatusOK, "DeleteUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}

func (h *uHandler) GetStudents(c *fiber.Ctx) error {
	students, err := h.uc.GetAllUserByRoleUC(c.Context(), domain.RoleStudent)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "GetStudents")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get students",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "GetStudents")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Students retrieved successfully",
		"data":    students,
	})
}

func (h *uHandler) GetTeachers(c *fiber.Ctx) error {
	teachers, err := h.uc.GetAllUserByRoleUC(c.Context(), domain.RoleTeacher)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusInternalServerError, "GetTeachers")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get teachers",
		})
	}

	config.PrintLogInfo(nil, fiber.StatusOK, "GetTeachers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Teachers retrieved successfully",
		"data":    teachers,
	})
}

func (h *uHandler) GetUser(c *fiber.Ctx) error {
	clerkID := c.Params("clerkId")

	user, err := h.uc.GetUserByClerkIDUC(c.Context(), clerkID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&clerkID, status, "GetUser")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to get user",
		})
	}

	config.PrintLogInfo(&clerkID, fiber.StatusOK, "GetUser")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User retrieved successfully",
		"data":    user,
	})
}

func (h *uHandler) AssignSubject(c *fiber.Ctx) error {
	teacherID := c.Params("teacherId")

	subject := c.Query("subject")
	if subject == "" {
		var payload struct {
			Subject string `json:"subject"`
		}
		if err := c.BodyParser(&payload); err == nil {
			subject = payload.Subject
		}
	}

	if subject == "" {
		config.PrintLogInfo(&teacherID, fiber.StatusBadRequest, "AssignSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "subject is required",
			"message": "Invalid request body",
		})
	}

	ts, err := h.uc.AssignSubjectUC(c.Context(), teacherID, subject)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&teacherID, status, "AssignSubject")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to assign subject",
		})
	}

	config.PrintLogInfo(&teacherID, fiber.StatusOK, "AssignSubject")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Subject assigned to teacher successfully",
		"data":    ts,
	})
}
