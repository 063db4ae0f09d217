package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FileType enumerates the kinds of entries a user can create.
type FileType string

const (
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
	FileTypeFolder FileType = "folder"
)

// Valid reports whether t is one of the known file types.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeFile, FileTypeImage, FileTypeFolder:
		return true
	}
	return false
}

// ParentRef is either the hierarchy root or a reference to a folder id.
// The zero value is the root.
type ParentRef struct {
	id string
}

// RootParent returns the reference denoting "no parent".
func RootParent() ParentRef { return ParentRef{} }

// ParentID returns a reference to the file with the given id.
// An empty id or "0" yields the root.
func ParentID(id string) ParentRef {
	if id == "0" {
		return ParentRef{}
	}
	return ParentRef{id: id}
}

// IsRoot reports whether p denotes the hierarchy root.
func (p ParentRef) IsRoot() bool { return p.id == "" }

// ID returns the referenced id, or "" for the root.
func (p ParentRef) ID() string { return p.id }

func (p ParentRef) String() string {
	if p.IsRoot() {
		return "0"
	}
	return p.id
}

// MarshalJSON encodes the root as 0 and any other parent as its id string,
// the shape clients of the service have always received.
func (p ParentRef) MarshalJSON() ([]byte, error) {
	if p.IsRoot() {
		return []byte("0"), nil
	}
	return json.Marshal(p.id)
}

// UnmarshalJSON accepts null, 0, "0" and "" as the root. Other numbers are kept
// as their decimal text so they fail id validation later instead of here.
func (p *ParentRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = RootParent()
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = ParentID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("parentId must be a string or a number: %w", err)
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*p = RootParent()
		return nil
	}
	*p = ParentID(n.String())
	return nil
}

// File is the stored record of a file, image or folder.
// LocalPath is set only for non-folders and never leaves the service.
type File struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Type      FileType  `json:"type"`
	IsPublic  bool      `json:"isPublic"`
	ParentID  ParentRef `json:"parentId"`
	LocalPath string    `json:"-"`
}

// IsFolder reports whether f is a folder.
func (f *File) IsFolder() bool { return f.Type == FileTypeFolder }

// FileInput is the create-file payload. Data is base64 and is only required
// for non-folder types.
type FileInput struct {
	Name     string    `json:"name"`
	Type     FileType  `json:"type"`
	IsPublic bool      `json:"isPublic"`
	Data     string    `json:"data"`
	ParentID ParentRef `json:"parentId"`
}

// FileResponse is the externally visible shape of a File.
type FileResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Name     string    `json:"name"`
	Type     FileType  `json:"type"`
	IsPublic bool      `json:"isPublic"`
	ParentID ParentRef `json:"parentId"`
}

// Project converts a stored record into its response shape, dropping LocalPath.
func Project(f *File) FileResponse {
	return FileResponse{
		ID:       f.ID,
		UserID:   f.UserID,
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: f.ParentID,
	}
}

// ProjectAll projects every record in files, preserving order.
func ProjectAll(files []File) []FileResponse {
	out := make([]FileResponse, 0, len(files))
	for i := range files {
		out = append(out, Project(&files[i]))
	}
	return out
}

// RenditionPath returns the blob path of a size variant of localPath.
// An empty size returns localPath unchanged.
func RenditionPath(localPath, size string) string {
	if size == "" {
		return localPath
	}
	return localPath + "_" + size
}

// RenditionWidth formats a thumbnail width as a size variant token.
func RenditionWidth(width int) string { return strconv.Itoa(width) }
