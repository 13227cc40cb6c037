package domain

import (
	"punchclock/internal/repository"
)

// UserMapper handles conversion between domain and persisted User models.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToRecord converts a domain User to its persisted form.
func (m *UserMapper) ToRecord(user User) repository.UserRecord {
	return repository.UserRecord{
		Username: user.Username,
		Role:     string(user.Role),
	}
}

// FromRecord converts a persisted user to a domain User.
func (m *UserMapper) FromRecord(record repository.UserRecord) User {
	return User{
		Username: record.Username,
		Role:     Role(record.Role),
	}
}

// ToRecordSlice converts a directory to its persisted form.
func (m *UserMapper) ToRecordSlice(dir Directory) []repository.UserRecord {
	records := make([]repository.UserRecord, len(dir))
	for i, user := range dir {
		records[i] = m.ToRecord(user)
	}
	return records
}

// FromRecordSlice converts persisted users to a Directory.
func (m *UserMapper) FromRecordSlice(records []repository.UserRecord) Directory {
	dir := make(Directory, len(records))
	for i, record := range records {
		dir[i] = m.FromRecord(record)
	}
	return dir
}

// EntryMapper handles conversion between domain and persisted TimeLogEntry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToRecord converts a domain TimeLogEntry to its persisted form.
func (m *EntryMapper) ToRecord(entry TimeLogEntry) repository.EntryRecord {
	return repository.EntryRecord{
		ID:       entry.ID,
		ClockIn:  entry.ClockIn,
		ClockOut: entry.ClockOut,
		NotesIn:  entry.NotesIn,
		NotesOut: entry.NotesOut,
	}
}

// FromRecord converts a persisted entry to a domain TimeLogEntry.
func (m *EntryMapper) FromRecord(record repository.EntryRecord) TimeLogEntry {
	return TimeLogEntry{
		ID:       record.ID,
		ClockIn:  record.ClockIn,
		ClockOut: record.ClockOut,
		NotesIn:  record.NotesIn,
		NotesOut: record.NotesOut,
	}
}

// ToRecordSlice converts a ledger's entries to their persisted form.
func (m *EntryMapper) ToRecordSlice(entries []TimeLogEntry) []repository.EntryRecord {
	records := make([]repository.EntryRecord, len(entries))
	for i, entry := range entries {
		records[i] = m.ToRecord(entry)
	}
	return records
}

// FromRecordSlice converts persisted entries to a ledger's entry list.
func (m *EntryMapper) FromRecordSlice(records []repository.EntryRecord) []TimeLogEntry {
	entries := make([]TimeLogEntry, len(records))
	for i, record := range records {
		entries[i] = m.FromRecord(record)
	}
	return entries
}

// Mapper aggregates all model mappers for convenient access.
type Mapper struct {
	User  *UserMapper
	Entry *EntryMapper
}

// NewMapper creates a new Mapper with all model mappers.
func NewMapper() *Mapper {
	return &Mapper{
		User:  NewUserMapper(),
		Entry: NewEntryMapper(),
	}
}
