package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
)

// ProjectRepository implements repositories.ProjectRepository
type ProjectRepository struct {
	p Provider
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(p Provider) *ProjectRepository {
	return &ProjectRepository{p: p}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	coll, err := collection(ctx, r.p, ProjectsCollection)
	if err != nil {
		return err
	}
	_, err = coll.InsertOne(ctx, toProjectDocument(project))
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Project, error) {
	coll, err := collection(ctx, r.p, ProjectsCollection)
	if err != nil {
		return nil, err
	}
	var doc projectDocument
	if err := findOne(ctx, coll, bson.M{"_id": id}, &doc); err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *ProjectRepository) List(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, error) {
	coll, err := collection(ctx, r.p, ProjectsCollection)
	if err != nil {
		return nil, err
	}
	docs, err := list[projectDocument](ctx, coll, projectQuery(filter), projectSort)
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Project, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toEntity())
	}
	return items, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	coll, err := collection(ctx, r.p, ProjectsCollection)
	if err != nil {
		return err
	}
	return replaceByID(ctx, coll, project.ID, toProjectDocument(project))
}

func (r *ProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := collection(ctx, r.p, ProjectsCollection)
	if err != nil {
		return err
	}
	return deleteByID(ctx, coll, id)
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	coll, err := collection(ctx, r.p, ProjectsCollection)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{})
}
