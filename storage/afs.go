package storage

import (
	"context"
	"strings"

	"github.com/viant/afs"
	afsstorage "github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// AFS keeps each slot as a separate object under baseURL
type AFS struct {
	baseURL string
	fs      afs.Service
	options []afsstorage.Option
}

func (a *AFS) itemURL(key string) string {
	return url.Join(a.baseURL, key)
}

func (a *AFS) GetItem(ctx context.Context, key string) (string, bool, error) {
	URL := a.itemURL(key)
	exists, err := a.fs.Exists(ctx, URL, a.options...)
	if err != nil || !exists {
		return "", false, err
	}
	data, err := a.fs.DownloadWithURL(ctx, URL, a.options...)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (a *AFS) SetItem(ctx context.Context, key, value string) error {
	return a.fs.Upload(ctx, a.itemURL(key), 0o600, strings.NewReader(value), a.options...)
}

func (a *AFS) RemoveItem(ctx context.Context, key string) error {
	URL := a.itemURL(key)
	exists, err := a.fs.Exists(ctx, URL, a.options...)
	if err != nil || !exists {
		return err
	}
	return a.fs.Delete(ctx, URL, a.options...)
}

// NewAFS creates storage rooted at baseURL, options are passed to every afs call
func NewAFS(baseURL string, options ...afsstorage.Option) *AFS {
	return &AFS{
		baseURL: baseURL,
		fs:      afs.New(),
		options: options,
	}
}
