package repositories

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/infrastructure/models"
)

// MemberRepository implements repositories.MemberRepository
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *entities.Member) error {
	return r.db.WithContext(ctx).Create(r.toModel(member)).Error
}

func (r *MemberRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Member, error) {
	var m models.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id.Hex()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MemberRepository) List(ctx context.Context, filter entities.MemberFilter) ([]*entities.Member, error) {
	query := r.db.WithContext(ctx).Model(&models.Member{})
	if term := likePattern(filter.Search); term != "" {
		query = query.Where(searchClause("name", "role"), repeatArg(term, 2)...)
	}
	if department := strings.TrimSpace(filter.Department); department != "" {
		query = query.Where("department = ?", department)
	}
	if year := strings.TrimSpace(filter.Year); year != "" {
		query = query.Where("year = ?", year)
	}

	var ms []models.Member
	if err := query.Order("featured DESC, name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Member, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *MemberRepository) Update(ctx context.Context, member *entities.Member) error {
	m := r.toModel(member)
	result := r.db.WithContext(ctx).
		Model(m).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result := r.db.WithContext(ctx).Delete(&models.Member{}, "id = ?", id.Hex())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *MemberRepository) toEntity(m *models.Member) *entities.Member {
	return &entities.Member{
		ID:         objectID(m.ID),
		Name:       m.Name,
		Role:       m.Role,
		Department: m.Department,
		Year:       m.Year,
		Skills:     nonNil(m.Skills),
		Image:      m.Image,
		Github:     m.Github.String,
		Linkedin:   m.Linkedin.String,
		Featured:   m.Featured,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

func (r *MemberRepository) toModel(e *entities.Member) *models.Member {
	return &models.Member{
		ID:         e.ID.Hex(),
		Name:       e.Name,
		Role:       e.Role,
		Department: e.Department,
		Year:       e.Year,
		Skills:     nonNil(e.Skills),
		Image:      e.Image,
		Github:     optionalString(e.Github),
		Linkedin:   optionalString(e.Linkedin),
		Featured:   e.Featured,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
