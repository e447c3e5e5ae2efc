package modgraph

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"github.com/estraier/tkrzw-go"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/zond/sqly"

	_ "modernc.org/sqlite"
)

// pathCacheTTL and pathCacheMaxKeys bound the in-memory Find() memoization,
// the same WithMaxKeys/WithTTL/WithLRU shape game/jsstats.go uses for its
// script/object stat caches.
const (
	pathCacheTTL     = 10 * time.Minute
	pathCacheMaxKeys = 4096
)

// moduleMeta is the SQL-side record of a resolved module: enough to decide
// whether a cached parse is still valid without re-reading its source.
type moduleMeta struct {
	Path     string `sqly:"pkey"`
	Name     string
	MTime    sqly.SQLTime
	DepPaths string // colon-joined dependency names as passed to PutMeta, same separator BETTERPYTHON_PATH uses
}

// opener mirrors storage/opener.go's accumulate-errors-across-opens idiom:
// open every handle unconditionally, then check a single err field once.
type opener struct {
	dir string
	err error
}

func (o *opener) openHash(name string) *tkrzw.DBM {
	if o.err != nil {
		return nil
	}
	dbm := tkrzw.NewDBM()
	stat := dbm.Open(filepath.Join(o.dir, name+".tkh"), true, map[string]string{
		"update_mode":      "UPDATE_APPENDING",
		"record_comp_mode": "RECORD_COMP_NONE",
	})
	if !stat.IsOK() {
		o.err = errors.WithStack(stat)
	}
	return dbm
}

// DiskCache is an opt-in, cross-run cache for module resolution: SQL
// metadata (path, mtime, dependency names) keyed the way storage.Storage
// keys its File rows, and a raw source-byte KV store keyed the way
// storage.Storage.sources is, so repeated CLI invocations over a large
// package tree can skip re-reading and re-parsing unchanged files.
type DiskCache struct {
	sql       *sqly.DB
	sources   *tkrzw.DBM
	pathCache cache.Cache[string, string]
}

// OpenDiskCache opens (creating if absent) a DiskCache rooted at dir.
func OpenDiskCache(ctx context.Context, dir string) (*DiskCache, error) {
	sql, err := sqly.Open("sqlite", filepath.Join(dir, "modgraph.db"))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	o := &opener{dir: dir}
	dc := &DiskCache{
		sql:       sql,
		sources:   o.openHash("sources"),
		pathCache: cache.NewCache[string, string]().WithMaxKeys(pathCacheMaxKeys).WithTTL(pathCacheTTL).WithLRU(),
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := sql.CreateTableIfNotExists(ctx, moduleMeta{}); err != nil {
		return nil, errors.WithStack(err)
	}
	return dc, nil
}

// FindCached wraps Find with a TTL'd name+callerDir -> resolved-path memo,
// so a deep package tree isn't re-stat'd on every resolver invocation.
func (dc *DiskCache) FindCached(name, callerDir string, searchPaths []string) (string, error) {
	key := name + "\x00" + callerDir
	if hit, ok := dc.pathCache.Get(key); ok {
		return hit, nil
	}
	resolved, err := Find(name, callerDir, searchPaths)
	if err != nil {
		return "", err
	}
	dc.pathCache.Set(key, resolved, 0)
	return resolved, nil
}

// GetSource returns the cached source bytes for absPath, or (nil, false) on
// a cache miss.
func (dc *DiskCache) GetSource(absPath string) ([]byte, bool) {
	v, stat := dc.sources.Get([]byte(absPath))
	if stat.GetCode() == tkrzw.StatusNotFoundError {
		return nil, false
	}
	return v, stat.IsOK()
}

// PutSource stores sourceBytes for absPath in the raw source-byte cache.
func (dc *DiskCache) PutSource(absPath string, sourceBytes []byte) error {
	if stat := dc.sources.Set([]byte(absPath), sourceBytes, true); !stat.IsOK() {
		return errors.WithStack(stat)
	}
	return nil
}

// Invalidate removes the cached metadata record and source bytes for
// absPath without comparing mtimes. The result reports whether a metadata
// record existed (and was removed).
func (dc *DiskCache) Invalidate(ctx context.Context, absPath string) (bool, error) {
	var existing moduleMeta
	err := sqlx.GetContext(ctx, dc.sql, &existing, "SELECT * FROM ModuleMeta WHERE Path = ?", absPath)
	if err != nil {
		return false, nil
	}
	if err := dc.sql.Write(ctx, func(tx *sqly.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM ModuleMeta WHERE Path = ?", absPath)
		return err
	}); err != nil {
		return false, errors.WithStack(err)
	}
	if stat := dc.sources.Remove([]byte(absPath)); !stat.IsOK() && stat.GetCode() != tkrzw.StatusNotFoundError {
		return false, errors.WithStack(stat)
	}
	return true, nil
}

// PutMeta records resolution metadata (name, mtime, dependency names) for
// absPath. DiskCache has no method that reads the record back; Invalidate
// deletes it.
func (dc *DiskCache) PutMeta(ctx context.Context, absPath, name string, mtime time.Time, depNames []string) error {
	meta := &moduleMeta{
		Path:     absPath,
		Name:     name,
		MTime:    sqly.ToSQLTime(mtime),
		DepPaths: strings.Join(depNames, ":"),
	}
	return errors.WithStack(dc.sql.Write(ctx, func(tx *sqly.Tx) error {
		return sqly.Upsert(ctx, tx, meta, true)
	}))
}
