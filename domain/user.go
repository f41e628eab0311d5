package domain

import (
	"context"
	"time"
)

const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
)

type User struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ClerkID     string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"clerk_id" valid:"required~Clerk ID is required"`
	UserID      string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"user_id" valid:"required~User ID is required"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name" valid:"required~First name is required"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name" valid:"required~Last name is required"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email" valid:"required~Email is required,email~Invalid email format"`
	PhoneNumber string    `gorm:"type:varchar(15);not null;uniqueIndex" json:"phone_number" valid:"required~Phone number is required"`
	Role        string    `gorm:"type:user_role_enum;not null" json:"role" valid:"in(STUDENT|TEACHER)~Invalid role"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, clerkID string) error
	GetUserByClerkID(ctx context.Context, clerkID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetAllUserByRole(ctx context.Context, role string) (*[]User, error)
	AssignSubject(ctx context.Context, teacherClerkID, subject string) (*TeacherSubject, error)
}

type UserUseCase interface {
	CreateUserUC(ctx context.Context, user *User) error
	DeleteUserUC(ctx context.Context, clerkID string) error
	GetUserByClerkIDUC(ctx context.Context, clerkID string) (*User, error)
	GetUserByEmailUC(ctx context.Context, email string) (*User, error)
	GetAllUserByRoleUC(ctx context.Context, role string) (*[]User, error)
	AssignSubjectUC(ctx context.Context, teacherClerkID, subject string) (*TeacherSubject, error)
}
