// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package memstore provides the in-memory storage driver built on hashicorp/go-memdb.
//
// # Architecture
//
// It mirrors the PostgreSQL schema closely enough for the domain
// repositories to offer the same observable behavior: identity sequences,
// and lookup indexes on the unique columns. go-memdb does not enforce
// uniqueness of secondary indexes on insert, so repositories check them
// inside the (exclusive) write transaction before inserting.
package memstore

import (
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-memdb"

	"github.com/taibuivan/heroes/internal/platform/database/schema"
)

// Index names shared by the memory repositories.
const (
	IndexID       = "id"
	IndexAlias    = "alias"
	IndexUsername = "username"
)

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		schema.Heroes.Table: {
			Name: schema.Heroes.Table,
			Indexes: map[string]*memdb.IndexSchema{
				IndexID: {
					Name:    IndexID,
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "ID"},
				},
				IndexAlias: {
					Name:    IndexAlias,
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Alias"},
				},
			},
		},
		schema.Users.Table: {
			Name: schema.Users.Table,
			Indexes: map[string]*memdb.IndexSchema{
				IndexID: {
					Name:    IndexID,
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "ID"},
				},
				IndexUsername: {
					Name:    IndexUsername,
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Username"},
				},
			},
		},
	},
}

// DB is an in-memory database with one identity sequence per table.
type DB struct {
	*memdb.MemDB
	sequences map[string]*atomic.Int64
}

// New creates an empty in-memory database.
func New() (*DB, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, fmt.Errorf("memstore: invalid schema: %w", err)
	}

	sequences := make(map[string]*atomic.Int64, len(dbSchema.Tables))
	for table := range dbSchema.Tables {
		sequences[table] = &atomic.Int64{}
	}

	return &DB{MemDB: db, sequences: sequences}, nil
}

// NextID returns the next identity value for table, starting at 1.
// Values are never reused, even after a rolled-back transaction.
func (db *DB) NextID(table string) int64 {
	return db.sequences[table].Add(1)
}
