// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Regledger Project
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Memory - a map backed store for tests and ephemeral runs
type Memory struct {
	sync.RWMutex
	values map[string][]byte
}

// NewMemory - create an empty in-process store
func NewMemory() *Memory {
	return &Memory{
		values: map[string][]byte{},
	}
}

// Get - read the requested addresses from one consistent instant
func (m *Memory) Get(addresses []string) (map[string][]byte, error) {
	m.RLock()
	defer m.RUnlock()

	values := make(map[string][]byte, len(addresses))
	for _, address := range addresses {
		value, ok := m.values[address]
		if !ok || 0 == len(value) {
			continue
		}
		copied := make([]byte, len(value))
		copy(copied, value)
		values[address] = copied
	}
	return values, nil
}

// Set - apply the whole write-set atomically
func (m *Memory) Set(writes map[string][]byte) ([]string, error) {
	m.Lock()
	defer m.Unlock()

	confirmed := make([]string, 0, len(writes))
	for address, value := range writes {
		if 0 == len(value) {
			delete(m.values, address)
		} else {
			copied := make([]byte, len(value))
			copy(copied, value)
			m.values[address] = copied
		}
		confirmed = append(confirmed, address)
	}
	return confirmed, nil
}
