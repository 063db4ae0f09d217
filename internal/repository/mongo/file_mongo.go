// Package mongo implements the metadata repositories on MongoDB collections.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"filestore/internal/model"
	"filestore/internal/repository"
)

const (
	colFiles = "files"
	colUsers = "users"
)

// rootParent is how the hierarchy root is stored in parentId.
const rootParent int32 = 0

// fileDoc is the stored shape of a file. parentId holds either rootParent or
// an ObjectID, so it is decoded loosely.
type fileDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	IsPublic  bool               `bson:"isPublic"`
	ParentID  any                `bson:"parentId"`
	LocalPath string             `bson:"localPath,omitempty"`
}

func (d *fileDoc) toModel() *model.File {
	return &model.File{
		ID:        d.ID.Hex(),
		UserID:    d.UserID.Hex(),
		Name:      d.Name,
		Type:      model.FileType(d.Type),
		IsPublic:  d.IsPublic,
		ParentID:  parentFromBSON(d.ParentID),
		LocalPath: d.LocalPath,
	}
}

func parentFromBSON(v any) model.ParentRef {
	switch p := v.(type) {
	case primitive.ObjectID:
		return model.ParentID(p.Hex())
	case string:
		return model.ParentID(p)
	default:
		// numeric zero, null or missing
		return model.RootParent()
	}
}

func parentToBSON(p model.ParentRef) (any, error) {
	if p.IsRoot() {
		return rootParent, nil
	}
	oid, err := primitive.ObjectIDFromHex(p.ID())
	if err != nil {
		return nil, fmt.Errorf("parent id %q: %w", p.ID(), err)
	}
	return oid, nil
}

// FileMongo is a MongoDB implementation of repository.FileRepository.
type FileMongo struct {
	col *mongo.Collection
}

// NewFileMongo creates a FileMongo over the "files" collection of db.
func NewFileMongo(db *mongo.Database) *FileMongo {
	return &FileMongo{col: db.Collection(colFiles)}
}

var _ repository.FileRepository = (*FileMongo)(nil)

// ValidID reports whether id is a hex ObjectID.
func (r *FileMongo) ValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// Insert stores f and returns the generated ObjectID as hex.
func (r *FileMongo) Insert(ctx context.Context, f *model.File) (string, error) {
	userID, err := primitive.ObjectIDFromHex(f.UserID)
	if err != nil {
		return "", fmt.Errorf("user id %q: %w", f.UserID, err)
	}
	parent, err := parentToBSON(f.ParentID)
	if err != nil {
		return "", err
	}

	doc := fileDoc{
		UserID:    userID,
		Name:      f.Name,
		Type:      string(f.Type),
		IsPublic:  f.IsPublic,
		ParentID:  parent,
		LocalPath: f.LocalPath,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert file: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByID returns the file with the given id.
func (r *FileMongo) FindByID(ctx context.Context, id string) (*model.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

// FindOwned returns the file with the given id when it belongs to userID.
func (r *FileMongo) FindOwned(ctx context.Context, id, userID string) (*model.File, error) {
	filter, ok := ownedFilter(id, userID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, filter)
}

func (r *FileMongo) findOne(ctx context.Context, filter bson.D) (*model.File, error) {
	var doc fileDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return doc.toModel(), nil
}

// ListByParent aggregates one page of the owner's files under q.Parent.
// Unparseable ids simply match nothing.
func (r *FileMongo) ListByParent(ctx context.Context, q repository.ListQuery) ([]model.File, error) {
	userID, err := primitive.ObjectIDFromHex(q.UserID)
	if err != nil {
		return []model.File{}, nil
	}
	parent, err := parentToBSON(q.Parent)
	if err != nil {
		return []model.File{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "userId", Value: userID},
			{Key: "parentId", Value: parent},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: q.Skip()}},
		{{Key: "$limit", Value: int64(repository.FilesPageSize)}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate files: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]model.File, 0)
	for cur.Next(ctx) {
		var doc fileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode file: %w", err)
		}
		items = append(items, *doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}
	return items, nil
}

// SetPublic sets isPublic on a file scoped to its owner and returns the updated document.
func (r *FileMongo) SetPublic(ctx context.Context, id, userID string, isPublic bool) (*model.File, error) {
	filter, ok := ownedFilter(id, userID)
	if !ok {
		return nil, repository.ErrNotFound
	}

	var doc fileDoc
	err := r.col.FindOneAndUpdate(ctx,
		filter,
		bson.D{{Key: "$set", Value: bson.D{{Key: "isPublic", Value: isPublic}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("update file visibility: %w", err)
	}
	return doc.toModel(), nil
}

// Count returns the number of documents in the files collection.
func (r *FileMongo) Count(ctx context.Context) (int64, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}
	return n, nil
}

func ownedFilter(id, userID string) (bson.D, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, false
	}
	return bson.D{{Key: "_id", Value: oid}, {Key: "userId", Value: uid}}, true
}
