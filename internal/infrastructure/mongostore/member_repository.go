package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
)

// MemberRepository implements repositories.MemberRepository
type MemberRepository struct {
	p Provider
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(p Provider) *MemberRepository {
	return &MemberRepository{p: p}
}

func (r *MemberRepository) Create(ctx context.Context, member *entities.Member) error {
	coll, err := collection(ctx, r.p, MembersCollection)
	if err != nil {
		return err
	}
	_, err = coll.InsertOne(ctx, toMemberDocument(member))
	return err
}

func (r *MemberRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Member, error) {
	coll, err := collection(ctx, r.p, MembersCollection)
	if err != nil {
		return nil, err
	}
	var doc memberDocument
	if err := findOne(ctx, coll, bson.M{"_id": id}, &doc); err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *MemberRepository) List(ctx context.Context, filter entities.MemberFilter) ([]*entities.Member, error) {
	coll, err := collection(ctx, r.p, MembersCollection)
	if err != nil {
		return nil, err
	}
	docs, err := list[memberDocument](ctx, coll, memberQuery(filter), memberSort)
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Member, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toEntity())
	}
	return items, nil
}

func (r *MemberRepository) Update(ctx context.Context, member *entities.Member) error {
	coll, err := collection(ctx, r.p, MembersCollection)
	if err != nil {
		return err
	}
	return replaceByID(ctx, coll, member.ID, toMemberDocument(member))
}

func (r *MemberRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := collection(ctx, r.p, MembersCollection)
	if err != nil {
		return err
	}
	return deleteByID(ctx, coll, id)
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	coll, err := collection(ctx, r.p, MembersCollection)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{})
}
