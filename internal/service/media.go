// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/store"
	"github.com/mrscientist29/GIReachAcademia-sub000/internal/util"
)

// thumbnailMaxDim bounds both thumbnail dimensions.
const thumbnailMaxDim = 320

// ErrUnsupportedMediaType is returned for uploads outside the accepted
// MIME types.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// MediaService stores uploaded files on disk, derives thumbnails for raster
// images, and records metadata in the persistence layer.
type MediaService struct {
	store     store.Store
	uploadDir string
	logger    *slog.Logger
}

// NewMediaService creates the upload directories if needed.
func NewMediaService(st store.Store, uploadDir string, logger *slog.Logger) (*MediaService, error) {
	for _, dir := range []string{uploadDir, filepath.Join(uploadDir, "thumbs")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
		}
	}
	return &MediaService{store: st, uploadDir: uploadDir, logger: logger}, nil
}

// allowedMimeTypes lists the upload types the library accepts.
var allowedMimeTypes = map[string]bool{
	model.MimeTypeJPEG: true,
	model.MimeTypePNG:  true,
	model.MimeTypeGIF:  true,
	model.MimeTypeWebP: true,
	model.MimeTypeSVG:  true,
	model.MimeTypePDF:  true,
}

// Upload saves the file, derives dimensions and a thumbnail for raster
// images, and persists the media record. A failed thumbnail is logged, not
// fatal.
func (s *MediaService) Upload(ctx context.Context, r io.Reader, filename, mimeType, uploadedBy string) (*model.Media, error) {
	if !allowedMimeTypes[mimeType] {
		return nil, fmt.Errorf("%w %s", ErrUnsupportedMediaType, mimeType)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	id := uuid.New().String()
	safeName := id + "-" + util.SanitizeFilename(filename)
	if err := os.WriteFile(filepath.Join(s.uploadDir, safeName), data, 0o644); err != nil {
		return nil, fmt.Errorf("saving upload: %w", err)
	}

	now := time.Now().UTC()
	media := &model.Media{
		ID:         id,
		Filename:   util.SanitizeFilename(filename),
		MimeType:   mimeType,
		Size:       int64(len(data)),
		URL:        "/uploads/" + safeName,
		UploadedBy: uploadedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if media.IsImage() {
		if err := s.attachImageMeta(media, safeName, data); err != nil {
			s.logger.Warn("thumbnail generation failed", "media", id, "error", err)
		}
	}

	if err := s.store.CreateMedia(ctx, media); err != nil {
		// Roll back the orphaned file.
		_ = os.Remove(filepath.Join(s.uploadDir, safeName))
		return nil, err
	}
	return media, nil
}

// attachImageMeta decodes the image, records its dimensions, and writes a
// thumbnail.
func (s *MediaService) attachImageMeta(media *model.Media, safeName string, data []byte) error {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	media.Width = bounds.Dx()
	media.Height = bounds.Dy()

	thumb := imaging.Fit(img, thumbnailMaxDim, thumbnailMaxDim, imaging.Lanczos)
	thumbPath := filepath.Join(s.uploadDir, "thumbs", safeName)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return fmt.Errorf("saving thumbnail: %w", err)
	}
	media.ThumbnailURL = "/uploads/thumbs/" + safeName
	return nil
}

// Delete removes the media record and its files. Stray file-removal
// failures are logged, not fatal.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	media, err := s.store.GetMedia(ctx, id)
	if err != nil {
		return err
	}
	if media == nil {
		return nil
	}

	if err := s.store.DeleteMedia(ctx, id); err != nil {
		return err
	}

	for _, url := range []string{media.URL, media.ThumbnailURL} {
		rel, ok := strings.CutPrefix(url, "/uploads/")
		if !ok || rel == "" {
			continue
		}
		path := filepath.Join(s.uploadDir, filepath.FromSlash(rel))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("removing media file failed", "path", path, "error", err)
		}
	}
	return nil
}
