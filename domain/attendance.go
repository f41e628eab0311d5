package domain

import (
	"context"
	"time"
)

const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceLeave   = "LEAVE"
)

type Attendance struct {
	ID      int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	ClerkID string    `gorm:"type:varchar(64);not null;index" json:"clerk_id"`
	Date    time.Time `gorm:"type:date;not null" json:"date"`
	Subject string    `gorm:"type:varchar(100);not null" json:"subject"`
	Status  string    `gorm:"type:attendance_status_enum;not null" json:"status"`
}

// AttendanceCreatePayload carries the client-supplied fields of a new
// attendance entry. The clerk id is resolved from the user row and the date
// is stamped with the server clock, neither is accepted from the client.
type AttendanceCreatePayload struct {
	UserID  string `json:"user_id" valid:"required~User ID is required"`
	Subject string `json:"subject" valid:"required~Subject is required"`
	Status  string `json:"status" valid:"in(PRESENT|ABSENT|LEAVE)~Invalid attendance status,optional"`
}

type AttendanceUpdatePayload struct {
	Status string `json:"status" valid:"in(PRESENT|ABSENT|LEAVE)~Invalid attendance status,optional"`
}

type AttendanceRepo interface {
	CreateAttendance(ctx context.Context, payload *AttendanceCreatePayload) (*Attendance, error)
	GetAllAttendance(ctx context.Context) (*[]Attendance, error)
	GetAttendanceByID(ctx context.Context, id int) (*Attendance, error)
	UpdateAttendanceStatus(ctx context.Context, id int, status string) (*Attendance, error)
	DeleteAttendance(ctx context.Context, id int) error
	GetAttendanceByClerkID(ctx context.Context, clerkID string) (*[]Attendance, error)
}

type AttendanceUseCase interface {
	CreateAttendanceUC(ctx context.Context, payload *AttendanceCreatePayload) (*Attendance, error)
	GetAllAttendanceUC(ctx context.Context) (*[]Attendance, error)
	GetAttendanceByIDUC(ctx context.Context, id int) (*Attendance, error)
	UpdateAttendanceStatusUC(ctx context.Context, id int, status string) (*Attendance, error)
	DeleteAttendanceUC(ctx context.Context, id int) error
	GetAttendanceByClerkIDUC(ctx context.Context, clerkID string) (*[]Attendance, error)
}
