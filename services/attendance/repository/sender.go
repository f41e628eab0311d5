package repository

import (
	"context"
	"errors"
	"fmt"
	"presensi/domain"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"gorm.io/gorm"
)

type senderRepository struct {
	db          *gorm.DB
	schoolPhone string
	meowClient  *whatsmeow.Client
}

func NewSenderRepository(db *gorm.DB, schoolPhone string, meow *whatsmeow.Client) domain.SenderRepo {
	return &senderRepository{
		db:          db,
		schoolPhone: schoolPhone,
		meowClient:  meow,
	}
}

// SendLeaveNotice tells the teacher that a leave request was filed against
// their subject. Called after the leave transaction has committed.
func (m *senderRepository) SendLeaveNotice(ctx context.Context, leave *domain.Leave) error {
	var ts domain.TeacherSubject
	err := m.db.WithContext(ctx).Where("teacher_id = ?", leave.TeacherSubjectID).First(&ts).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("teacher subject %s: %w", leave.TeacherSubjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("could not get teacher subject: %v", err)
	}

	var teacher domain.User
	err = m.db.WithContext(ctx).Where("clerk_id = ?", ts.TeacherID).First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("teacher %s: %w", ts.TeacherID, domain.ErrNotFound)
		}
		return fmt.Errorf("could not get teacher: %v", err)
	}

	var student domain.User
	err = m.db.WithContext(ctx).Where("clerk_id = ?", leave.StudentID).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("student %s: %w", leave.StudentID, domain.ErrNotFound)
		}
		return fmt.Errorf("could not get student: %v", err)
	}

	body := m.createLeaveNoticeBody(&ts, &teacher, &student, leave)

	return m.sendWA(ctx, teacher.PhoneNumber, body)
}

func (m *senderRepository) createLeaveNoticeBody(ts *domain.TeacherSubject, teacher, student *domain.User, leave *domain.Leave) string {
	formattedDate := leave.Date.Format("02/01/2006")

	dayPart := "Full day"
	if leave.HalfDay {
		dayPart = "Half day"
	}

	reason := "No reason given"
	if leave.Reason != nil && *leave.Reason != "" {
		reason = *leave.Reason
	}

	body := fmt.Sprintf(`PRESENSI Service 🔔

Dear %s %s,
A leave request has been filed for your subject %s:
Student: %s %s,
Date: %s,
Duration: %s,
Reason: %s.

Please open the dashboard to approve or reject the request.
`, teacher.FirstName, teacher.LastName, ts.Subject, student.FirstName, student.LastName, formattedDate, dayPart, reason)

	body += fmt.Sprintf(`
If you have any questions or need further information, you can contact us at %s.

Sincerely,
PRESENSI Team`, m.schoolPhone)

	return body
}

func (m *senderRepository) sendWA(ctx context.Context, telephone, body string) error {
	completeFormat := fmt.Sprintf("%s%s", "62", telephone[1:])

	jid := types.NewJID(completeFormat, types.DefaultUserServer)

	conversationMessage := &waE2E.Message{
		Conversation: &body,
	}

	_, err := m.meowClient.SendMessage(ctx, jid, conversationMessage)
	if err != nil {
		return err
	}
	return nil
}
