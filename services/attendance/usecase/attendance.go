package usecase

import (
	"context"
	"presensi/domain"
	"time"
)

type attendanceUC struct {
	attendanceRepo domain.AttendanceRepo
	TimeOut        time.Duration
}

func NewAttendanceUseCase(repo domain.AttendanceRepo, timeOut time.Duration) domain.AttendanceUseCase {
	return &attendanceUC{
		attendanceRepo: repo,
		TimeOut:        timeOut,
	}
}

func (aUC *attendanceUC) CreateAttendanceUC(ctx context.Context, payload *domain.AttendanceCreatePayload) (*domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	attendance, err := aUC.attendanceRepo.CreateAttendance(ctx, payload)
	if err != nil {
		return nil, err
	}
	return attendance, nil
}

func (aUC *attendanceUC) GetAllAttendanceUC(ctx context.Context) (*[]domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	attendances, err := aUC.attendanceRepo.GetAllAttendance(ctx)
	if err != nil {
		return nil, err
	}
	return attendances, nil
}

func (aUC *attendanceUC) GetAttendanceByIDUC(ctx context.Context, id int) (*domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	attendance, err := aUC.attendanceRepo.GetAttendanceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return attendance, nil
}

func (aUC *attendanceUC) UpdateAttendanceStatusUC(ctx context.Context, id int, status string) (*domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	attendance, err := aUC.attendanceRepo.UpdateAttendanceStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return attendance, nil
}

func (aUC *attendanceUC) DeleteAttendanceUC(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	err := aUC.attendanceRepo.DeleteAttendance(ctx, id)
	if err != nil {
		return err
	}
	return nil
}

func (aUC *attendanceUC) GetAttendanceByClerkIDUC(ctx context.Context, clerkID string) (*[]domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	attendances, err := aUC.attendanceRepo.GetAttendanceByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	return attendances, nil
}
