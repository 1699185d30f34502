package bolt

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var (
	sessionBucket = []byte("session")
	tokenKey      = []byte("token")
)

// TokenStore keeps the session token in a local bbolt file.
type TokenStore struct {
	db *bolt.DB
}

func NewTokenStore(db *bolt.DB) *TokenStore {
	return &TokenStore{db: db}
}

func (s *TokenStore) Load(_ context.Context) (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		if b == nil {
			return nil
		}
		token = string(b.Get(tokenKey))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Save(_ context.Context, token string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(sessionBucket)
		if err != nil {
			return err
		}
		return b.Put(tokenKey, []byte(token))
	})
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(_ context.Context) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		if b == nil {
			return nil
		}
		return b.Delete(tokenKey)
	})
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
