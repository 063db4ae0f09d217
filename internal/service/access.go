package service

import "filestore/internal/model"

// CanRead reports whether requesterID may read f. Public files are readable by
// anyone; private files only by their owner. An empty requesterID is anonymous.
func CanRead(f *model.File, requesterID string) bool {
	if f.IsPublic {
		return true
	}
	return requesterID != "" && requesterID == f.UserID
}
