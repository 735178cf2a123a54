package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"

	apperrors "whisper-vault/internal/app/errors"
	"whisper-vault/internal/app/storage"
)

var _ storage.ObjectStore = (*MockObjectStore)(nil)

// StoredObject is an object held by MockObjectStore.
type StoredObject struct {
	Data        []byte
	ContentType string
}

// MockObjectStore keeps objects in memory.
type MockObjectStore struct {
	mu      sync.Mutex
	objects map[string]StoredObject

	BaseURL   string
	PutErr    error
	DeleteErr error

	PutCalls    []string
	DeleteCalls []string
}

// NewMockObjectStore creates an empty store whose public URLs start with BaseURL.
func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		objects: make(map[string]StoredObject),
		BaseURL: "http://storage.test/audio",
	}
}

func (m *MockObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PutCalls = append(m.PutCalls, key)
	if m.PutErr != nil {
		return m.PutErr
	}
	if _, ok := m.objects[key]; ok {
		return apperrors.Step(apperrors.ErrObjectExists, fmt.Errorf("%s", key))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if size >= 0 && int64(len(data)) != size {
		return fmt.Errorf("size mismatch: declared %d, read %d", size, len(data))
	}
	m.objects[key] = StoredObject{Data: data, ContentType: contentType}
	return nil
}

func (m *MockObjectStore) PublicURL(key string) string {
	return m.BaseURL + "/" + key
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteCalls = append(m.DeleteCalls, key)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.objects, key)
	return nil
}

// Object returns the stored object under key.
func (m *MockObjectStore) Object(key string) (StoredObject, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[key]
	return obj, ok
}

// Len returns the number of stored objects.
func (m *MockObjectStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
