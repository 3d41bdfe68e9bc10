package crawler

import (
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var (
	pageBucket = []byte("pages")

	ErrPageNotFound = errors.New("page not found")
)

// PageStore keeps downloaded pages in a bbolt file keyed by "<page>/<name>.html".
type PageStore struct {
	db *bolt.DB
}

func OpenPageStore(path string) (*PageStore, error) {
	db, err := bolt.Open(path, 0o666, nil)
	if err != nil {
		return nil, fmt.Errorf("open page store %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(pageBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &PageStore{db: db}, nil
}

func (s *PageStore) Put(key string, body []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(pageBucket).Put([]byte(key), body)
	})
}

func (s *PageStore) Get(key string) ([]byte, error) {
	var body []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(pageBucket).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%s: %w", key, ErrPageNotFound)
		}
		body = append([]byte(nil), v...)
		return nil
	})
	return body, err
}

func (s *PageStore) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(pageBucket).Stats().KeyN
		return nil
	})
	return n, err
}

// ForEach visits pages in key order. body is only valid during the call.
func (s *PageStore) ForEach(f func(key string, body []byte) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(pageBucket).ForEach(func(k, v []byte) error {
			return f(string(k), v)
		})
	})
}

func (s *PageStore) Close() error {
	return s.db.Close()
}
