// internal/modelstore/store.go

// Package modelstore persists a fitted vocabulary and trained ensemble to a
// BoltDB file, so a model trained on one source experiment can score any
// number of target experiments without retraining.
package modelstore

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/nowling-lab/genomic-element-ml/core/ensemble"
)

const (
	metaBucket     = "meta"
	vocabBucket    = "vocab"
	learnersBucket = "learners"

	configKey = "config"
	termsKey  = "terms"
)

// Meta records the configuration a stored model was trained with.
type Meta struct {
	KmerSizes    []int   `json:"kmer_sizes"`
	Lambda       float64 `json:"lambda"`
	EnsembleSize int     `json:"ensemble_size"`
	Epochs       int     `json:"epochs"`
	LearningRate float64 `json:"learning_rate"`
	Seed         int64   `json:"seed"`
}

// Save writes meta, the vocabulary terms (in column order), and every
// learner to path, replacing any previous contents.
func Save(path string, meta Meta, vocab []string, m *ensemble.Model) error {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return fmt.Errorf("open model store: %w", err)
	}
	defer func() { _ = db.Close() }()

	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{metaBucket, vocabBucket, learnersBucket} {
			if tx.Bucket([]byte(name)) != nil {
				if err := tx.DeleteBucket([]byte(name)); err != nil {
					return err
				}
			}
		}
		mb, err := tx.CreateBucket([]byte(metaBucket))
		if err != nil {
			return err
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("marshal meta: %w", err)
		}
		if err := mb.Put([]byte(configKey), data); err != nil {
			return err
		}

		vb, err := tx.CreateBucket([]byte(vocabBucket))
		if err != nil {
			return err
		}
		terms, err := json.Marshal(vocab)
		if err != nil {
			return fmt.Errorf("marshal vocabulary: %w", err)
		}
		if err := vb.Put([]byte(termsKey), terms); err != nil {
			return err
		}

		lb, err := tx.CreateBucket([]byte(learnersBucket))
		if err != nil {
			return err
		}
		for i, l := range m.Learners {
			data, err := json.Marshal(l)
			if err != nil {
				return fmt.Errorf("marshal learner %d: %w", i, err)
			}
			var key [8]byte
			binary.BigEndian.PutUint64(key[:], uint64(i))
			if err := lb.Put(key[:], data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load reads a model store written by Save. Learners come back in their
// original training order (BoltDB cursors iterate keys in byte order).
func Load(path string) (Meta, []string, *ensemble.Model, error) {
	var (
		meta  Meta
		vocab []string
		model ensemble.Model
	)
	db, err := bbolt.Open(path, 0o400, &bbolt.Options{Timeout: 1 * time.Second, ReadOnly: true})
	if err != nil {
		return meta, nil, nil, fmt.Errorf("open model store: %w", err)
	}
	defer func() { _ = db.Close() }()

	err = db.View(func(tx *bbolt.Tx) error {
		mb := tx.Bucket([]byte(metaBucket))
		if mb == nil {
			return fmt.Errorf("%s: not a model store (no %s bucket)", path, metaBucket)
		}
		if err := json.Unmarshal(mb.Get([]byte(configKey)), &meta); err != nil {
			return fmt.Errorf("unmarshal meta: %w", err)
		}

		vb := tx.Bucket([]byte(vocabBucket))
		if vb == nil {
			return fmt.Errorf("%s: missing %s bucket", path, vocabBucket)
		}
		if err := json.Unmarshal(vb.Get([]byte(termsKey)), &vocab); err != nil {
			return fmt.Errorf("unmarshal vocabulary: %w", err)
		}

		lb := tx.Bucket([]byte(learnersBucket))
		if lb == nil {
			return fmt.Errorf("%s: missing %s bucket", path, learnersBucket)
		}
		return lb.ForEach(func(_, v []byte) error {
			var l ensemble.Learner
			if err := json.Unmarshal(v, &l); err != nil {
				return fmt.Errorf("unmarshal learner: %w", err)
			}
			model.Learners = append(model.Learners, l)
			return nil
		})
	})
	if err != nil {
		return meta, nil, nil, err
	}
	return meta, vocab, &model, nil
}
