package models

type MessageType string

const (
	MessageTypeAnnouncement MessageType = "announcement"
	MessageTypeMaintenance  MessageType = "maintenance"
	MessageTypeUpdate       MessageType = "update"
)

func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeAnnouncement, MessageTypeMaintenance, MessageTypeUpdate:
		return true
	}
	return false
}

type AdminMessage struct {
	Base
	Title       string      `gorm:"type:varchar(255);not null" json:"title"`
	Content     string      `gorm:"type:text;not null" json:"content"`
	MessageType MessageType `gorm:"type:varchar(20);not null;default:'announcement'" json:"message_type"`
	IsActive    bool        `gorm:"not null;index" json:"is_active"`
	CreatedBy   string      `gorm:"type:varchar(36);not null" json:"created_by"`
}
