package usecases

import (
	"context"
	"errors"

	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/domain/repositories"
)

// MemberUsecase handles member management
type MemberUsecase struct {
	repo repositories.MemberRepository
}

// NewMemberUsecase creates a new member usecase
func NewMemberUsecase(repo repositories.MemberRepository) *MemberUsecase {
	return &MemberUsecase{repo: repo}
}

// List returns members, featured first then by name.
func (u *MemberUsecase) List(ctx context.Context, filter entities.MemberFilter) ([]*entities.Member, error) {
	return u.repo.List(ctx, filter)
}

func (u *MemberUsecase) ListPublic(ctx context.Context) ([]*entities.Member, error) {
	return u.repo.List(ctx, entities.MemberFilter{})
}

func (u *MemberUsecase) Create(ctx context.Context, input entities.MemberInput) (*entities.Member, error) {
	member, err := entities.NewMember(input)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (u *MemberUsecase) Update(ctx context.Context, rawID string, patch entities.MemberPatch) (*entities.Member, error) {
	id, err := entities.ParseID(rawID, "member")
	if err != nil {
		return nil, err
	}

	member, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, memberNotFound(err)
	}
	if err := patch.Apply(member); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, member); err != nil {
		return nil, memberNotFound(err)
	}
	return member, nil
}

func (u *MemberUsecase) Delete(ctx context.Context, rawID string) error {
	id, err := entities.ParseID(rawID, "member")
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return memberNotFound(err)
	}
	return nil
}

func memberNotFound(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Member not found")
	}
	return err
}
