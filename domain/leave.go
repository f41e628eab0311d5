package domain

import (
	"context"
	"time"
)

const (
	LeavePending  = "PENDING"
	LeaveApproved = "APPROVED"
	LeaveRejected = "REJECTED"
)

type Leave struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID        string    `gorm:"type:varchar(64);not null;index" json:"student_id"`
	TeacherSubjectID string    `gorm:"type:varchar(64);not null;index" json:"teacher_subject_id"`
	Date             time.Time `gorm:"type:date;not null" json:"date"`
	HalfDay          bool      `gorm:"not null;default:false" json:"half_day"`
	Reason           *string   `gorm:"type:varchar(255)" json:"reason"`
	Status           string    `gorm:"type:leave_status_enum;not null" json:"status"`
}

type LeaveApplyPayload struct {
	StudentID        string  `json:"student_id" valid:"required~Student ID is required"`
	TeacherSubjectID string  `json:"teacher_subject_id" valid:"required~Teacher subject ID is required"`
	Date             string  `json:"date" valid:"required~Date is required"`
	HalfDay          bool    `json:"half_day"`
	Reason           *string `json:"reason" valid:"optional"`
}

type LeaveUpdatePayload struct {
	Status string `json:"status" valid:"required~Status is required,in(PENDING|APPROVED|REJECTED)~Invalid leave status"`
}

type LeaveRepo interface {
	ApplyLeave(ctx context.Context, leave *Leave) error
	GetAllLeave(ctx context.Context) (*[]Leave, error)
	GetLeavesForIdentity(ctx context.Context, clerkID string, teacherSubjectIDs []string) (*[]Leave, error)
	GetLeaveByID(ctx context.Context, id int) (*Leave, error)
	UpdateLeaveStatus(ctx context.Context, id int, status string) (*Leave, error)
	DeleteLeave(ctx context.Context, id int) error
}

type LeaveUseCase interface {
	ApplyLeaveUC(ctx context.Context, leave *Leave) error
	GetAllLeaveUC(ctx context.Context) (*[]Leave, error)
	GetLeavesForIdentityUC(ctx context.Context, clerkID string) (*[]Leave, error)
	GetLeaveByIDUC(ctx context.Context, id int) (*Leave, error)
	UpdateLeaveStatusUC(ctx context.Context, id int, status string) (*Leave, error)
	DeleteLeaveUC(ctx context.Context, id int) error
}
