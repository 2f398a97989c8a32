package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteFileError
	ReadFileError

	// Logging errors
	CreateLogFileError
	LogWriteError

	// Database errors
	DBConnectionError
	DBUnknownDriverError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBCountRowsError

	// Schema errors
	SchemaConflictError
	SchemaMissingDependencyError
	SchemaIrreversibleError
	SchemaCreateError

	// Fixture errors
	SeedError

	// Lookup errors
	LookupNotFoundError
	LookupQueryError
)
