package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"filestore/internal/model"
	"filestore/internal/repository"
	"filestore/internal/storage"
)

// Thumbnailer accepts image rendition jobs. Enqueue must not block.
type Thumbnailer interface {
	Enqueue(fileID, localPath string) bool
}

// FileData is the content of a file together with the type to serve it as.
type FileData struct {
	Name        string
	ContentType string
	Content     []byte
}

// FileService defines the use cases for files and folders.
type FileService interface {
	// Create validates in, writes the decoded content to blob storage for
	// non-folders and then inserts the metadata record.
	Create(ctx context.Context, userID string, in model.FileInput) (*model.FileResponse, error)

	// Get returns a file's metadata if requesterID may read it.
	Get(ctx context.Context, id, requesterID string) (*model.FileResponse, error)

	// List returns one page of userID's files under parent.
	List(ctx context.Context, userID string, parent model.ParentRef, page int) ([]model.FileResponse, error)

	// SetVisibility publishes or unpublishes a file owned by requesterID.
	SetVisibility(ctx context.Context, id, requesterID string, public bool) (*model.FileResponse, error)

	// Data returns the content of a file, or of one of its size renditions.
	Data(ctx context.Context, id, requesterID, size string) (*FileData, error)
}

type fileService struct {
	files  repository.FileRepository
	users  repository.UserRepository
	store  storage.Storage
	root   string
	thumbs Thumbnailer
	log    *zap.Logger
	tracer trace.Tracer
}

// NewFileService constructs a FileService. root is the blob storage root; thumbs
// may be nil to disable image renditions.
func NewFileService(
	files repository.FileRepository,
	users repository.UserRepository,
	store storage.Storage,
	root string,
	thumbs Thumbnailer,
	log *zap.Logger,
) FileService {
	return &fileService{
		files:  files,
		users:  users,
		store:  store,
		root:   strings.TrimRight(root, "/"),
		thumbs: thumbs,
		log:    log.Named("files"),
		tracer: otel.Tracer("filestore/internal/service"),
	}
}

func (s *fileService) Create(ctx context.Context, userID string, in model.FileInput) (*model.FileResponse, error) {
	ctx, span := s.tracer.Start(ctx, "FileService.Create",
		trace.WithAttributes(attribute.String("file.type", string(in.Type))))
	defer span.End()

	in, err := ValidateFileInput(ctx, in, s.files)
	if err != nil {
		return nil, err
	}

	f := &model.File{
		UserID:   userID,
		Name:     in.Name,
		Type:     in.Type,
		IsPublic: in.IsPublic,
		ParentID: in.ParentID,
	}

	if !f.IsFolder() {
		content, err := decodeData(in.Data)
		if err != nil {
			return nil, &ValidationError{Message: "Invalid data"}
		}
		f.LocalPath = s.root + "/" + uuid.NewString()
		if err := s.store.Put(ctx, f.LocalPath, content); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "blob write failed")
			return nil, &StorageError{Err: err}
		}
	}

	id, err := s.files.Insert(ctx, f)
	if err != nil {
		if f.LocalPath != "" {
			s.log.Warn("blob left without metadata",
				zap.String("local_path", f.LocalPath),
				zap.Error(err),
			)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("insert file: %w", err)
	}
	f.ID = id
	span.SetAttributes(attribute.String("file.id", id))

	if f.Type == model.FileTypeImage && s.thumbs != nil {
		s.thumbs.Enqueue(f.ID, f.LocalPath)
	}

	resp := model.Project(f)
	return &resp, nil
}

func (s *fileService) Get(ctx context.Context, id, requesterID string) (*model.FileResponse, error) {
	ctx, span := s.tracer.Start(ctx, "FileService.Get", trace.WithAttributes(attribute.String("file.id", id)))
	defer span.End()

	f, err := s.readable(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	resp := model.Project(f)
	return &resp, nil
}

func (s *fileService) List(ctx context.Context, userID string, parent model.ParentRef, page int) ([]model.FileResponse, error) {
	ctx, span := s.tracer.Start(ctx, "FileService.List")
	defer span.End()

	if page < 0 {
		page = 0
	}
	items, err := s.files.ListByParent(ctx, repository.ListQuery{UserID: userID, Parent: parent, Page: page})
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return model.ProjectAll(items), nil
}

func (s *fileService) SetVisibility(ctx context.Context, id, requesterID string, public bool) (*model.FileResponse, error) {
	ctx, span := s.tracer.Start(ctx, "FileService.SetVisibility",
		trace.WithAttributes(attribute.String("file.id", id), attribute.Bool("file.public", public)))
	defer span.End()

	if !s.files.ValidID(id) || requesterID == "" {
		return nil, ErrUnauthorized
	}
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("load requester: %w", err)
	}

	if _, err := s.files.FindOwned(ctx, id, requesterID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load file: %w", err)
	}

	f, err := s.files.SetPublic(ctx, id, requesterID, public)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update visibility: %w", err)
	}
	resp := model.Project(f)
	return &resp, nil
}

func (s *fileService) Data(ctx context.Context, id, requesterID, size string) (*FileData, error) {
	ctx, span := s.tracer.Start(ctx, "FileService.Data",
		trace.WithAttributes(attribute.String("file.id", id), attribute.String("file.size", size)))
	defer span.End()

	f, err := s.readable(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	if f.IsFolder() {
		return nil, ErrFolderContent
	}
	if size != "" {
		if n, err := strconv.Atoi(size); err != nil || n <= 0 {
			return nil, ErrNotFound
		}
	}

	p := model.RenditionPath(f.LocalPath, size)
	content, err := s.store.Get(ctx, p)
	if err != nil {
		if !errors.Is(err, storage.ErrNotExist) {
			s.log.Warn("blob read failed", zap.String("local_path", p), zap.Error(err))
		}
		return nil, ErrNotFound
	}

	return &FileData{
		Name:        f.Name,
		ContentType: contentType(f.Name, content),
		Content:     content,
	}, nil
}

// readable loads a file and hides it unless requesterID may read it.
func (s *fileService) readable(ctx context.Context, id, requesterID string) (*model.File, error) {
	f, err := s.files.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load file: %w", err)
	}
	if !CanRead(f, requesterID) {
		return nil, ErrNotFound
	}
	return f, nil
}

// decodeData accepts padded and unpadded standard base64.
func decodeData(data string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
}

// contentType prefers the type registered for the file name's extension and
// falls back to sniffing the content.
func contentType(name string, content []byte) string {
	if ext := path.Ext(name); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
	}
	return mimetype.Detect(content).String()
}
