package usecase

import (
	"context"
	"presensi/config"
	"presensi/domain"
	"time"
)

type leaveUC struct {
	leaveRepo  domain.LeaveRepo
	tsRepo     domain.TeacherSubjectRepo
	senderRepo domain.SenderRepo
	TimeOut    time.Duration
}

func NewLeaveUseCase(repo domain.LeaveRepo, tsRepo domain.TeacherSubjectRepo, sender domain.SenderRepo, timeOut time.Duration) domain.LeaveUseCase {
	return &leaveUC{
		leaveRepo:  repo,
		tsRepo:     tsRepo,
		senderRepo: sender,
		TimeOut:    timeOut,
	}
}

// ApplyLeaveUC creates the leave and then notifies the teacher. The notice is
// dispatched on its own context after the write has committed, so a slow or
// broken sink can neither block nor fail the application.
func (lUC *leaveUC) ApplyLeaveUC(ctx context.Context, leave *domain.Leave) error {
	ctx, cancel := context.WithTimeout(ctx, lUC.TimeOut)
	defer cancel()

	err := lUC.leaveRepo.ApplyLeave(ctx, leave)
	if err != nil {
		return err
	}

	notice := *leave
	go func() {
		sendCtx, sendCancel := context.WithTimeout(context.Background(), lUC.TimeOut)
		defer sendCancel()

		if err := lUC.senderRepo.SendLeaveNotice(sendCtx, &notice); err != nil {
			config.GetLogrusInstance().Errorf("failed to send leave notice for leave %d: %v", notice.ID, err)
		}
	}()

	return nil
}

func (lUC *leaveUC) GetAllLeaveUC(ctx context.Context) (*[]domain.Leave, error) {
	ctx, cancel := context.WithTimeout(ctx, lUC.TimeOut)
	defer cancel()

	leaves, err := lUC.leaveRepo.GetAllLeave(ctx)
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

// GetLeavesForIdentityUC resolves the teacher-subject ids owned by the clerk
// id first, then filters leaves on either side of the request.
func (lUC *leaveUC) GetLeavesForIdentityUC(ctx context.Context, clerkID string) (*[]domain.Leave, error) {
	ctx, cancel := context.WithTimeout(ctx, lUC.TimeOut)
	defer cancel()

	tss, err := lUC.tsRepo.GetTeacherSubjectsByTeacherID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	var tsIDs []string
	for _, ts := range *tss {
		tsIDs = append(tsIDs, ts.TeacherID)
	}

	leaves, err := lUC.leaveRepo.GetLeavesForIdentity(ctx, clerkID, tsIDs)
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (lUC *leaveUC) GetLeaveByIDUC(ctx context.Context, id int) (*domain.Leave, error) {
	ctx, cancel := context.WithTimeout(ctx, lUC.TimeOut)
	defer cancel()

	leave, err := lUC.leaveRepo.GetLeaveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return leave, nil
}

func (lUC *leaveUC) UpdateLeaveStatusUC(ctx context.Context, id int, status string) (*domain.Leave, error) {
	ctx, cancel := context.WithTimeout(ctx, lUC.TimeOut)
	defer cancel()

	leave, err := lUC.leaveRepo.UpdateLeaveStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return leave, nil
}

func (lUC *leaveUC) DeleteLeaveUC(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, lUC.TimeOut)
	defer cancel()

	err := lUC.leaveRepo.DeleteLeave(ctx, id)
	if err != nil {
		return err
	}
	return nil
}
