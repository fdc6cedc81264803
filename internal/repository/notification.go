package repository

import (
	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	CreateNotification(n *notification.Notification) error
	GetNotificationByID(id uint) (notification.Notification, error)
	ListForRecipient(recipientType notification.PartyType, recipientID uint, q notification.ListQuery) ([]notification.Notification, error)
	MarkRead(id uint) error
	DeleteNotification(id uint) error
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) CreateNotification(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) GetNotificationByID(id uint) (notification.Notification, error) {
	var n notification.Notification
	err := r.db.First(&n, id).Error
	return n, err
}

func (r *DBNotificationRepo) ListForRecipient(recipientType notification.PartyType, recipientID uint, q notification.ListQuery) ([]notification.Notification, error) {
	var ns []notification.Notification
	query := r.db.Where("recipient_type = ? AND recipient_id = ?", recipientType, recipientID)
	if q.Before > 0 {
		query = query.Where("id < ?", q.Before)
	}
	query = query.Order("id DESC")
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	err := query.Find(&ns).Error
	return ns, err
}

func (r *DBNotificationRepo) MarkRead(id uint) error {
	return r.db.Model(&notification.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}

func (r *DBNotificationRepo) DeleteNotification(id uint) error {
	return r.db.Delete(&notification.Notification{}, id).Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{db: tx}
}
