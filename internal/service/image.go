package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pageza/recipebox/backend/internal/errs"
)

// now is swapped out in tests to pin image keys.
var now = time.Now

// AddImage uploads an image and returns its public URL. The object name is
// the upload time in epoch milliseconds joined to the original file name.
func (s *RecipeService) AddImage(ctx context.Context, data []byte, originalName, contentType string) (string, error) {
	if s.images == nil {
		return "", errors.New("image storage is not configured")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: image file is required", errs.ErrInvalidInput)
	}

	name := strconv.FormatInt(now().UnixMilli(), 10) + "_" + filepath.Base(originalName)
	url, err := s.images.Upload(ctx, name, contentType, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}
