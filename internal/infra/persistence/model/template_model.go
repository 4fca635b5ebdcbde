package model

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplateModel is the GORM-specific struct for the 'email_templates' table.
// It stores the subject and bodies of an email kind, keyed by template_key.
type EmailTemplateModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TemplateKey string    `gorm:"type:text;not null;uniqueIndex"`
	Subject     string    `gorm:"type:text;not null"`
	HTMLContent string    `gorm:"column:html_content;type:text;not null"`
	TextContent string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailTemplateModel) TableName() string {
	return "email_templates"
}
