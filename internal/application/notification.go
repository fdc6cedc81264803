package application

import (
	"encoding/json"
	"errors"

	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"github.com/vendorlynx/vendorlynx-go/internal/repository"
	"github.com/vendorlynx/vendorlynx-go/pkg/types"
	"gorm.io/gorm"
)

// Pusher receives best-effort live pushes after a notification commits.
// Delivery is not guaranteed; clients recover missed pushes through the
// list endpoint.
type Pusher interface {
	Publish(recipientType notification.PartyType, recipientID uint, n *notification.Notification)
}

type NotificationService struct {
	Repos  *repository.Repos
	Pusher Pusher
}

func NewNotificationService(repos *repository.Repos, pusher Pusher) *NotificationService {
	return &NotificationService{Repos: repos, Pusher: pusher}
}

// Dispatch builds and persists one notification through the given repos
// (pass transaction-scoped repos to tie it to a state mutation). Every
// invocation creates a new record; there is no deduplication.
func (s *NotificationService) Dispatch(repos *repository.Repos, in notification.DispatchInput) (*notification.Notification, error) {
	if in.SenderID == 0 || in.RecipientID == 0 {
		return nil, ErrInvalidDispatch
	}
	if !in.SenderType.Valid() || !in.RecipientType.Valid() {
		return nil, ErrInvalidDispatch
	}
	dir, ok := notification.DirectionOf(in.Type)
	if !ok {
		return nil, ErrInvalidDispatch
	}
	if dir.Sender != in.SenderType || dir.Recipient != in.RecipientType {
		return nil, ErrInvalidDispatch
	}
	if in.Data.ProjectID == 0 || in.Data.ProjectName == "" {
		return nil, ErrInvalidDispatch
	}

	msg := in.Message
	if msg == "" {
		rendered, ok := notification.RenderMessage(in.Type, in.Data.ProjectName)
		if !ok {
			return nil, ErrInvalidDispatch
		}
		msg = rendered
	}

	payload, err := json.Marshal(in.Data)
	if err != nil {
		return nil, ErrInvalidDispatch
	}

	n := &notification.Notification{
		SenderID:      in.SenderID,
		SenderType:    in.SenderType,
		RecipientID:   in.RecipientID,
		RecipientType: in.RecipientType,
		Type:          in.Type,
		Message:       msg,
		Data:          payload,
	}
	if err := repos.Notification.CreateNotification(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Push forwards a committed notification to any live stream listener.
func (s *NotificationService) Push(n *notification.Notification) {
	if s.Pusher == nil || n == nil {
		return
	}
	s.Pusher.Publish(n.RecipientType, n.RecipientID, n)
}

// defaultPageSize bounds unpaginated notification listings.
const defaultPageSize = 50

func (s *NotificationService) ListForRecipient(claims *types.Claims, q notification.ListQuery) ([]notification.Notification, error) {
	party, ok := notification.PartyOf(claims.Role)
	if !ok {
		return nil, ErrNotEntitled
	}
	if q.Limit <= 0 {
		q.Limit = defaultPageSize
	}
	return s.Repos.Notification.ListForRecipient(party, claims.AccountID, q)
}

// MarkRead sets read=true; repeating the call is a no-op.
func (s *NotificationService) MarkRead(claims *types.Claims, id uint) (*notification.Notification, error) {
	n, err := s.owned(claims, id)
	if err != nil {
		return nil, err
	}
	if !n.Read {
		if err := s.Repos.Notification.MarkRead(id); err != nil {
			return nil, err
		}
		n.Read = true
	}
	return n, nil
}

func (s *NotificationService) Delete(claims *types.Claims, id uint) error {
	if _, err := s.owned(claims, id); err != nil {
		return err
	}
	return s.Repos.Notification.DeleteNotification(id)
}

func (s *NotificationService) owned(claims *types.Claims, id uint) (*notification.Notification, error) {
	n, err := s.Repos.Notification.GetNotificationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	party, ok := notification.PartyOf(claims.Role)
	if !ok || n.RecipientType != party || n.RecipientID != claims.AccountID {
		return nil, ErrNotEntitled
	}
	return &n, nil
}
