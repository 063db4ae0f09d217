package service

import (
	"context"
	"errors"
	"fmt"

	"filestore/internal/model"
	"filestore/internal/repository"
)

const (
	msgMissingName    = "Missing name"
	msgMissingType    = "Missing type"
	msgMissingData    = "Missing data"
	msgParentNotFound = "Parent not found"
	msgParentNotDir   = "Parent is not a folder"
)

// ValidateFileInput checks a create-file payload rule by rule and stops at the
// first failure, which is returned as a *ValidationError. Parent ids that are
// not valid for the backend are reported as not found without a lookup.
func ValidateFileInput(ctx context.Context, in model.FileInput, files repository.FileRepository) (model.FileInput, error) {
	if in.Name == "" {
		return in, &ValidationError{Message: msgMissingName}
	}
	if !in.Type.Valid() {
		return in, &ValidationError{Message: msgMissingType}
	}
	if in.Type != model.FileTypeFolder && in.Data == "" {
		return in, &ValidationError{Message: msgMissingData}
	}

	if in.ParentID.IsRoot() {
		return in, nil
	}
	if !files.ValidID(in.ParentID.ID()) {
		return in, &ValidationError{Message: msgParentNotFound}
	}
	parent, err := files.FindByID(ctx, in.ParentID.ID())
	if errors.Is(err, repository.ErrNotFound) {
		return in, &ValidationError{Message: msgParentNotFound}
	}
	if err != nil {
		return in, fmt.Errorf("load parent: %w", err)
	}
	if !parent.IsFolder() {
		return in, &ValidationError{Message: msgParentNotDir}
	}
	return in, nil
}
