package db

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// ErrNotFound is returned by Get when the key does not exist
var ErrNotFound = leveldb.ErrNotFound

// LevelDB wraps the actual LevelDB connection
type LevelDB struct {
	conn *leveldb.DB
}

// NewLevelDB opens (or creates) a LevelDB instance at the given path
func NewLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelDB{conn: db}, nil
}

// NewMemLevelDB opens a LevelDB instance backed by memory, used by tests
func NewMemLevelDB() (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &LevelDB{conn: db}, nil
}

// Close safely closes the LevelDB connection
func (l *LevelDB) Close() error {
	return l.conn.Close()
}

// Put inserts or updates a key-value pair
func (l *LevelDB) Put(key, value []byte) error {
	return l.conn.Put(key, value, nil)
}

// Get retrieves the value for a given key
func (l *LevelDB) Get(key []byte) ([]byte, error) {
	return l.conn.Get(key, nil)
}

// Has reports whether key exists
func (l *LevelDB) Has(key []byte) (bool, error) {
	return l.conn.Has(key, nil)
}

// Delete removes a key; deleting a missing key is not an error
func (l *LevelDB) Delete(key []byte) error {
	return l.conn.Delete(key, nil)
}

// WriteBatch applies all puts atomically
func (l *LevelDB) WriteBatch(kvs map[string][]byte) error {
	batch := new(leveldb.Batch)
	for k, v := range kvs {
		batch.Put([]byte(k), v)
	}
	return l.conn.Write(batch, nil)
}

// NewIterator returns an iterator over the keys starting with prefix.
// A nil prefix iterates over everything.
func (l *LevelDB) NewIterator(prefix []byte) iterator.Iterator {
	if prefix == nil {
		return l.conn.NewIterator(nil, nil)
	}
	return l.conn.NewIterator(util.BytesPrefix(prefix), nil)
}

// DropAll deletes every key in the database
func (l *LevelDB) DropAll() error {
	iter := l.conn.NewIterator(nil, nil)
	defer iter.Release()

	batch := new(leveldb.Batch)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	if err := iter.Error(); err != nil {
		return err
	}
	return l.conn.Write(batch, nil)
}
