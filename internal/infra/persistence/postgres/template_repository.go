package postgres

import (
	"context"

	"crave/internal/domain/entity"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// templateRepository implements the repository.TemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// FindActiveByKey retrieves the active template for a key. A deactivated
// template reads the same as a missing one.
func (repo *templateRepository) FindActiveByKey(ctx context.Context, templateKey string) (*entity.EmailTemplate, error) {
	var templateM model.EmailTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("template_key = ? AND is_active = ?", templateKey, true).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find template by key")
	}

	return toTemplateDomain(&templateM), nil
}

// --- Mapper Functions ---

// toTemplateDomain converts a GORM EmailTemplateModel to a domain EmailTemplate entity.
func toTemplateDomain(data *model.EmailTemplateModel) *entity.EmailTemplate {
	if data == nil {
		return nil
	}

	return &entity.EmailTemplate{
		ID:          data.ID,
		TemplateKey: data.TemplateKey,
		Subject:     data.Subject,
		HTMLContent: data.HTMLContent,
		TextContent: data.TextContent,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
