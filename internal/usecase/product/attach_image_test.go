package product_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/marketplace-api/internal/audit"
	"github.com/agriconnect/marketplace-api/internal/httperr"
	"github.com/agriconnect/marketplace-api/internal/models"
	ucProduct "github.com/agriconnect/marketplace-api/internal/usecase/product"
)

type fakeUploader struct {
	lastKey         string
	lastContentType string
}

func (u *fakeUploader) Upload(_ context.Context, key string, _ []byte, contentType string) (string, error) {
	u.lastKey = key
	u.lastContentType = contentType
	return "https://cdn.test/" + key, nil
}

func pngBytes(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return &buf
}

func TestAttachProductImage(t *testing.T) {
	repo := newFakeRepo(&models.Product{ID: "p1", Name: "Maize", OwnerID: "owner-1"})
	cache := &fakeCache{warm: true}
	uploader := &fakeUploader{}
	uc := ucProduct.NewAttachProductImage(repo, cache, uploader, audit.NewDispatcher(newRecordedEvents()))

	p, err := uc.Execute(context.Background(), "owner-1", "p1", pngBytes(t))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/products/p1.webp", p.ImageURL)
	assert.Equal(t, "products/p1.webp", uploader.lastKey)
	assert.Equal(t, "image/webp", uploader.lastContentType)
	assert.Equal(t, 1, cache.invalidations)

	stored, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, p.ImageURL, stored.ImageURL)
}

func TestAttachProductImageRejections(t *testing.T) {
	repo := newFakeRepo(&models.Product{ID: "p1", Name: "Maize", OwnerID: "owner-1"})
	uc := ucProduct.NewAttachProductImage(repo, &fakeCache{}, &fakeUploader{}, audit.NewDispatcher(newRecordedEvents()))

	_, err := uc.Execute(context.Background(), "owner-1", "missing", pngBytes(t))
	assert.True(t, httperr.IsBusiness(err, "product_not_found"))

	_, err = uc.Execute(context.Background(), "intruder", "p1", pngBytes(t))
	assert.True(t, httperr.IsBusiness(err, "not_owner"))

	_, err = uc.Execute(context.Background(), "owner-1", "p1", strings.NewReader("not an image"))
	assert.True(t, httperr.IsBusiness(err, "invalid_image"))
}
