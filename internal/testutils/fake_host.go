package testutils

import (
	"context"
	"fmt"
	"sync"

	"github.com/Dishalex/PhotoShare/internal/platform/imagehost"
)

// FakeHost is an in-memory imagehost.Host that records every call.
type FakeHost struct {
	mu         sync.Mutex
	Objects    map[string][]byte
	Uploads    []string
	Transforms []imagehost.Operation
	Deletes    []string

	UploadErr    error
	TransformErr error
	DeleteErr    error

	seq int
}

func NewFakeHost() *FakeHost {
	return &FakeHost{Objects: map[string][]byte{}}
}

func (f *FakeHost) Upload(_ context.Context, data []byte, publicID string) (imagehost.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UploadErr != nil {
		return imagehost.Asset{}, f.UploadErr
	}
	f.Uploads = append(f.Uploads, publicID)
	f.Objects[publicID] = data
	return imagehost.Asset{URL: "https://img.test/" + publicID, PublicID: publicID}, nil
}

func (f *FakeHost) Transform(_ context.Context, publicID string, op imagehost.Operation) (imagehost.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.TransformErr != nil {
		return imagehost.Asset{}, f.TransformErr
	}
	if err := op.Validate(); err != nil {
		return imagehost.Asset{}, err
	}
	f.seq++
	f.Transforms = append(f.Transforms, op)
	id := fmt.Sprintf("photo_share/derived-%d", f.seq)
	f.Objects[id] = f.Objects[publicID]
	return imagehost.Asset{URL: "https://img.test/" + id, PublicID: id}, nil
}

func (f *FakeHost) Delete(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.Deletes = append(f.Deletes, publicID)
	delete(f.Objects, publicID)
	return nil
}

func (f *FakeHost) UploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Uploads)
}

// StaticQR renders a fixed payload so tests can compare what was uploaded.
type StaticQR struct {
	Calls int
}

func (q *StaticQR) Render(content string) ([]byte, error) {
	q.Calls++
	return []byte("qr:" + content), nil
}
