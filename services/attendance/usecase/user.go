package usecase

import (
	"context"
	"presensi/domain"
	"time"
)

type userUC struct {
	userRepo domain.UserRepo
	TimeOut  time.Duration
}

func NewUserUseCase(repo domain.UserRepo, timeOut time.Duration) domain.UserUseCase {
	return &userUC{
		userRepo: repo,
		TimeOut:  timeOut,
	}
}

func (uUC *userUC) CreateUserUC(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	err := uUC.userRepo.CreateUser(ctx, user)
	if err != nil {
		return err
	}
	return nil
}

func (uUC *userUC) DeleteUserUC(ctx context.Context, clerkID string) error {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	err := uUC.userRepo.DeleteUser(ctx, clerkID)
	if err != nil {
		return err
	}
	return nil
}

func (uUC *userUC) GetUserByClerkIDUC(ctx context.Context, clerkID string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	user, err := uUC.userRepo.GetUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uUC *userUC) GetUserByEmailUC(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	user, err := uUC.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uUC *userUC) GetAllUserByRoleUC(ctx context.Context, role string) (*[]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	users, err := uUC.userRepo.GetAllUserByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (uUC *userUC) AssignSubjectUC(ctx context.Context, teacherClerkID, subject string) (*domain.TeacherSubject, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	ts, err := uUC.userRepo.AssignSubject(ctx, teacherClerkID, subject)
	if err != nil {
		return nil, err
	}
	return ts, nil
}
