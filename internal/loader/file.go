package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/kamusis/advising-cli/internal/catalog"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	defaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 100 * time.Millisecond
)

// ErrCatalogLocked indicates another process held an exclusive lock on the
// catalog file for longer than the lock timeout.
var ErrCatalogLocked = errors.New("catalog file is locked by another process")

// LoadFile opens path and loads it into idx.
//
// The file is read under a shared advisory lock. Files ending in .gz, .zst or
// .lz4 are decompressed, and a leading byte order mark is removed.
func LoadFile(ctx context.Context, path string, idx *catalog.Index, opts Options) (*Result, error) {
	log := opts.logger().WithSource(path)
	opts.Logger = log

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog %s: %w", path, err)
	}
	defer f.Close()

	timeout := opts.LockTimeout
	if timeout <= 0 {
		timeout = defaultLockTimeout
	}
	unlock, err := acquireReadLock(ctx, path, timeout)
	if err != nil {
		return nil, err
	}
	defer unlock()
	log.DebugContext(ctx, "catalog opened", "lock_timeout", timeout)

	r, closeDecoder, err := decoderFor(path, f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode catalog %s: %w", path, err)
	}
	defer closeDecoder()

	// Only a leading BOM is consumed; other bytes reach the parser unchanged.
	text := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	result, err := Load(ctx, text, idx, opts)
	if err != nil {
		return result, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// acquireReadLock takes a shared lock on path, retrying until timeout.
func acquireReadLock(ctx context.Context, path string, timeout time.Duration) (func(), error) {
	l := flock.New(path, flock.SetFlag(os.O_RDONLY))
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryRLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot lock catalog %s: %w", path, err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("%s: %w", path, ErrCatalogLocked)
		}
		select {
		case <-ctx.Done():
			return func() {}, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
}

// decoderFor wraps r in a decompressor chosen by the extension of path.
func decoderFor(path string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	case ".lz4":
		return lz4.NewReader(r), func() {}, nil
	default:
		return r, func() {}, nil
	}
}
