package storage

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveUploader uploads wallpapers into a Google Drive folder.
type DriveUploader struct {
	svc      *drive.Service
	folderID string // parent folder for all uploads
}

// NewDriveUploader builds an Uploader from pre-provisioned credentials
// (service-account file or an authenticated HTTP client via opts). This
// service never runs an interactive consent flow or refreshes tokens itself.
func NewDriveUploader(ctx context.Context, folderID string, opts ...option.ClientOption) (*DriveUploader, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}
	return &DriveUploader{svc: svc, folderID: folderID}, nil
}

// Upload creates the file from the in-memory bytes and grants anyone/reader
// so the returned id resolves through the public view URL.
func (d *DriveUploader) Upload(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	meta := &drive.File{Name: name}
	if d.folderID != "" {
		meta.Parents = []string{d.folderID}
	}
	f, err := d.svc.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("drive upload: %w", err)
	}
	perm := &drive.Permission{Type: "anyone", Role: "reader"}
	if _, err := d.svc.Permissions.Create(f.Id, perm).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("drive permission: %w", err)
	}
	return f.Id, nil
}
