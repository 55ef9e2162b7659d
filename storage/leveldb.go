// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_errors "github.com/syndtr/goleveldb/leveldb/errors"

	"github.com/bitmark-inc/logger"

	"github.com/regledger/transferd/fault"
)

// LevelDB - a durable store backed by a local LevelDB database
type LevelDB struct {
	database *leveldb.DB
	log      *logger.L
}

// NewLevelDB - open (or create) the database directory
func NewLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if ldb_errors.IsCorrupted(err) {
		db, err = leveldb.RecoverFile(path, nil)
	}
	if nil != err {
		return nil, err
	}
	return &LevelDB{
		database: db,
		log:      logger.New("storage"),
	}, nil
}

// Close - release the database
func (s *LevelDB) Close() error {
	return s.database.Close()
}

// Get - read the requested addresses
//
// absent addresses are simply left out of the result mapping
func (s *LevelDB) Get(addresses []string) (map[string][]byte, error) {
	values := make(map[string][]byte, len(addresses))
	for _, address := range addresses {
		value, err := s.database.Get([]byte(address), nil)
		if leveldb.ErrNotFound == err {
			continue
		}
		if nil != err {
			s.log.Errorf("get: %s  error: %s", address, err)
			return nil, fault.ErrStoreReadFailed
		}
		if 0 == len(value) {
			continue
		}
		values[address] = value
	}
	return values, nil
}

// Set - commit the whole write-set as one batch
func (s *LevelDB) Set(writes map[string][]byte) ([]string, error) {
	batch := new(leveldb.Batch)
	confirmed := make([]string, 0, len(writes))
	for address, value := range writes {
		if 0 == len(value) {
			batch.Delete([]byte(address))
		} else {
			batch.Put([]byte(address), value)
		}
		confirmed = append(confirmed, address)
	}

	err := s.database.Write(batch, nil)
	if nil != err {
		s.log.Errorf("set: batch of %d  error: %s", len(writes), err)
		return nil, fault.ErrWriteConflict
	}
	return confirmed, nil
}
