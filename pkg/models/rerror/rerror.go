package rerror

import (
	"errors"
	"fmt"
)

const (
	RG_UNEXPECTED       = "RGU"
	RG_CONFIG_ERROR     = "RGC"
	RG_IO_ERROR         = "RGI"
	RG_STORE_ERROR      = "RGS"
	RG_TABLE_EXISTS     = "RGE"
	RG_TABLE_NOT_FOUND  = "RGN"
	RG_INVALID_SPLITS   = "RGP"
	RG_SPLIT_FILE_ERROR = "RGF"
	RG_DECODE_ERROR     = "RGD"
)

var existingErrorCodeMap = map[string]string{
	RG_CONFIG_ERROR:     "Configuration error",
	RG_IO_ERROR:         "I/O error",
	RG_STORE_ERROR:      "Region store error",
	RG_TABLE_EXISTS:     "TableExists",
	RG_TABLE_NOT_FOUND:  "TableNotFound",
	RG_INVALID_SPLITS:   "InvalidSplitKeys",
	RG_SPLIT_FILE_ERROR: "MalformedSplitFile",
	RG_DECODE_ERROR:     "Decode error",
}

// GetMessageByCode returns the human readable name of an error code.
func GetMessageByCode(errorCode string) string {
	rep, ok := existingErrorCodeMap[errorCode]
	if ok {
		return rep
	}
	return "Unexpected error"
}

var _ error = &RegionError{}

type RegionError struct {
	Err error

	ErrorCode string
}

// New creates a RegionError with the given code and message.
func New(errorCode string, errorMsg string) *RegionError {
	return &RegionError{
		Err:       errors.New(errorMsg),
		ErrorCode: errorCode,
	}
}

// Newf is New with fmt-style formatting. A %w verb keeps the wrapped error reachable.
func Newf(errorCode string, format string, a ...any) *RegionError {
	return &RegionError{
		Err:       fmt.Errorf(format, a...),
		ErrorCode: errorCode,
	}
}

func NewByCode(errorCode string) *RegionError {
	return New(errorCode, GetMessageByCode(errorCode))
}

func (er *RegionError) Error() string {
	return fmt.Sprintf("Code: %s. Name: %s. Description: %s.",
		er.ErrorCode, GetMessageByCode(er.ErrorCode), er.Err)
}

func (er *RegionError) Unwrap() error {
	return er.Err
}

// Code returns the code of the first RegionError in err's chain,
// or RG_UNEXPECTED when there is none.
func Code(err error) string {
	var rerr *RegionError
	if errors.As(err, &rerr) {
		return rerr.ErrorCode
	}
	return RG_UNEXPECTED
}

// IsCode reports whether err's chain carries a RegionError with the given code.
func IsCode(err error, errorCode string) bool {
	var rerr *RegionError
	return errors.As(err, &rerr) && rerr.ErrorCode == errorCode
}
