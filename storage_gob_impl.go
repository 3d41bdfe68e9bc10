package ristorante

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// StorageGobImpl keeps a whole snapshot in one gob file. It suits local runs
// where no MySQL server is available.
type StorageGobImpl struct {
	Path string
}

func NewStorageGobImpl(path string) *StorageGobImpl {
	return &StorageGobImpl{Path: path}
}

type gobSnapshot struct {
	Documents     []Document
	Tokens        []Token
	BooleanIndex  BooleanIndex
	WeightedIndex WeightedIndex
}

func (s *StorageGobImpl) read() (gobSnapshot, error) {
	var g gobSnapshot
	f, err := os.Open(s.Path)
	if err != nil {
		return g, fmt.Errorf("open snapshot %s: %w", s.Path, err)
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		return g, fmt.Errorf("decode snapshot %s: %w", s.Path, err)
	}
	return g, nil
}

func (s *StorageGobImpl) CountDocuments() (int, error) {
	g, err := s.read()
	if err != nil {
		return -1, err
	}
	return len(g.Documents), nil
}

func (s *StorageGobImpl) GetAllDocuments() ([]Document, error) {
	g, err := s.read()
	if err != nil {
		return nil, err
	}
	return g.Documents, nil
}

func (s *StorageGobImpl) GetTokens() ([]Token, error) {
	g, err := s.read()
	if err != nil {
		return nil, err
	}
	return g.Tokens, nil
}

func (s *StorageGobImpl) GetBooleanIndex() (BooleanIndex, error) {
	g, err := s.read()
	if err != nil {
		return nil, err
	}
	if g.BooleanIndex == nil {
		return BooleanIndex{}, nil
	}
	return g.BooleanIndex, nil
}

func (s *StorageGobImpl) GetWeightedIndex() (WeightedIndex, error) {
	g, err := s.read()
	if err != nil {
		return nil, err
	}
	if g.WeightedIndex == nil {
		return WeightedIndex{}, nil
	}
	return g.WeightedIndex, nil
}

// SaveSnapshot writes to a temporary file first and renames it over Path.
func (s *StorageGobImpl) SaveSnapshot(snapshot *Snapshot) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	g := gobSnapshot{
		Documents:     snapshot.Documents.All(),
		Tokens:        snapshot.Vocabulary.Tokens(),
		BooleanIndex:  snapshot.BooleanIndex,
		WeightedIndex: snapshot.WeightedIndex,
	}
	if err := gob.NewEncoder(tmp).Encode(g); err != nil {
		tmp.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}
