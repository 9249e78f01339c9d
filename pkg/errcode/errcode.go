package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	CredentialsFileError

	// Logging errors
	CreateLogFileError

	// Metrics errors
	MetricsWriteError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBNotConnectedError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// E-utilities errors
	EutilsRequestError
	EutilsStatusError
	EutilsMalformedResponseError
	EutilsServiceError

	// Projection errors
	ExtractionContractError

	// Store errors
	StoreOpenError
	StoreWriteError
	StoreQueryError
	StoreUnknownTypeError
	StoreValueError

	// Import errors
	ImportCancelledError
	ImportTermError

	// LinkOut errors
	LinkOutError
)
