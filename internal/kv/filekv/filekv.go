// Package filekv is a JSON-file-backed implementation of the kv.Store
// contract, suitable for single-node deployments and tests.
package filekv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/lockerhub/boxhub/internal/kv"
)

type FileStore struct {
	filePath string
	mu       sync.Mutex
	data     map[string]string
}

func New(filePath string) (*FileStore, error) {
	fs := &FileStore{
		filePath: filePath,
		data:     make(map[string]string),
	}
	return fs, fs.load()
}

func (fs *FileStore) load() error {
	file, err := os.Open(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open kv file: %w", err)
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(&fs.data)
}

// save writes the whole map back to disk. Caller must hold fs.mu.
func (fs *FileStore) save() error {
	file, err := os.Create(fs.filePath)
	if err != nil {
		return fmt.Errorf("failed to create kv file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fs.data)
}

func (fs *FileStore) Get(_ context.Context, key string) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	value, ok := fs.data[key]
	if !ok {
		return "", kv.ErrKeyNotFound
	}
	return value, nil
}

func (fs *FileStore) Set(_ context.Context, key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.data[key] = value
	return fs.save()
}

func (fs *FileStore) Remove(_ context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	delete(fs.data, key)
	return fs.save()
}

func (fs *FileStore) MultiGet(_ context.Context, keys []string) (map[string]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	result := make(map[string]string, len(keys))
	for _, key := range keys {
		if value, ok := fs.data[key]; ok {
			result[key] = value
		}
	}
	return result, nil
}

func (fs *FileStore) MultiSet(_ context.Context, pairs map[string]string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for key, value := range pairs {
		fs.data[key] = value
	}
	return fs.save()
}

func (fs *FileStore) MultiRemove(_ context.Context, keys []string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, key := range keys {
		delete(fs.data, key)
	}
	return fs.save()
}
