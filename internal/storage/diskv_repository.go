package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvKV keeps each key in its own file under a base directory.
type DiskvKV struct {
	d *diskv.Diskv
}

func OpenDiskv(basePath string) *DiskvKV {
	return &DiskvKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024,
	})}
}

func (k *DiskvKV) Get(_ context.Context, key string) ([]byte, error) {
	val, err := k.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return val, nil
}

func (k *DiskvKV) Put(_ context.Context, key string, value []byte) error {
	if err := k.d.Write(key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (k *DiskvKV) Delete(_ context.Context, key string) error {
	if !k.d.Has(key) {
		return ErrNotFound
	}
	return k.d.Erase(key)
}

func (k *DiskvKV) Close() error {
	return nil
}
