package postgres

import (
	"context"
	"time"

	"crave/config"
	"crave/internal/domain/entity"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
// Segment windows come from configuration so marketing can tune the
// audiences without a code change.
type userRepository struct {
	db       *gorm.DB
	segments config.SegmentsConfig
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		db:       db,
		segments: cfg.Segments,
	}
}

// FindByID retrieves a single user.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByIDs retrieves the users that exist among the given ids. Missing ids
// are silently absent from the result; the caller decides how to react.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by IDs")
	}

	return toUserDomainSlice(userModels), nil
}

// FindBySegment resolves a named audience segment into users.
func (repo *userRepository) FindBySegment(ctx context.Context, segment entity.Segment) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx)
	now := time.Now()

	switch segment {
	case entity.SegmentActive:
		cutoff := now.AddDate(0, 0, -repo.segments.ActiveWithinDays)
		query = query.Where("last_order_at IS NOT NULL AND last_order_at >= ?", cutoff)
	case entity.SegmentNew:
		cutoff := now.AddDate(0, 0, -repo.segments.NewWithinDays)
		query = query.Where("created_at >= ?", cutoff)
	case entity.SegmentVIP:
		query = query.Where("points >= ?", repo.segments.VIPMinPoints)
	default:
		return nil, repository.ErrUnknownSegment
	}

	var userModels []*model.UserModel

	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by segment")
	}

	return toUserDomainSlice(userModels), nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:          data.ID,
		Email:       data.Email,
		Phone:       data.Phone,
		Name:        data.Name,
		Points:      data.Points,
		LastOrderAt: data.LastOrderAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toUserDomainSlice(userModels []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users
}
