package types

import "fmt"

// ResultCode is the status every vendor library call returns.
// ResultOK is the only success value.
type ResultCode int32

const (
	ResultOK                    ResultCode = 1   // success
	ResultGenericError          ResultCode = 0   // generic error
	ResultInvalidFilename       ResultCode = -1  // invalid filename
	ResultInvalidObject         ResultCode = -2  // invalid object number
	ResultInvalidInfos          ResultCode = -3  // invalid infos structure
	ResultInvalidComment        ResultCode = -4  // invalid comment
	ResultInvalidPoints         ResultCode = -5  // invalid array of points
	ResultAlreadyOpen           ResultCode = -6  // file already open
	ResultNotEnoughMemory       ResultCode = -7  // not enough memory to run the operation
	ResultNotImplemented        ResultCode = -8  // function not yet implemented
	ResultInvalidPointSize      ResultCode = -9  // size of the points is incorrect
	ResultInvalid1stArg         ResultCode = -10 // invalid first argument
	ResultInvalid2ndArg         ResultCode = -11 // invalid second argument
	ResultInvalid3rdArg         ResultCode = -12 // invalid third argument
	ResultInvalid4thArg         ResultCode = -13 // invalid fourth argument
	ResultUnknownStudiable      ResultCode = -14 // invalid studiable type
	ResultWriteOnRead           ResultCode = -15 // write on a file opened for reading
	ResultWrongObjectIndex      ResultCode = -16 // object index out of range
	ResultWrongWriteOperation   ResultCode = -17 // writes issued out of order
	ResultIOFileError           ResultCode = -18 // error when accessing the file
	ResultNullPointer           ResultCode = -19 // NULL pointer given as a parameter
	ResultReadOnWrite           ResultCode = -20 // read on a file opened for writing
	ResultUnknownFileFlags      ResultCode = -21 // invalid open mode
	ResultBadSize               ResultCode = -22 // bad structure size
	ResultRecordAlreadyInList   ResultCode = -23 // record already in the list
	ResultRecordNotInList       ResultCode = -24 // record not found in the file
	ResultUnknownRecordID       ResultCode = -25 // unknown record id
	ResultUnknownFileFormat     ResultCode = -26 // unknown file format
	ResultBadObjectCount        ResultCode = -27 // invalid object count in file
	ResultInvalidStudiableSize  ResultCode = -28 // size in points is invalid
	ResultInvalidXStep          ResultCode = -29 // invalid X step
	ResultInvalidYStep          ResultCode = -30 // invalid Y step
	ResultInvalidZStep          ResultCode = -31 // invalid Z step
	ResultEmptyComment          ResultCode = -32 // comment write with a zero comment size
	ResultWrongAPIVersion       ResultCode = -33 // caller and library API versions differ too much
	ResultInvalidFileHandle     ResultCode = -34 // invalid file handle
	ResultInvalidParamProfInfo  ResultCode = -35 // invalid parametric profile information
	ResultInvalidWCount         ResultCode = -36 // invalid depth count
	ResultTotalPointsOverflow   ResultCode = -37 // cols*rows*depth overflows
	ResultCantChangeCompression ResultCode = -38 // compression set after data was written
	ResultInvalidBooleanArg     ResultCode = -39 // boolean must be 0 or 1
	ResultCompressionFailure    ResultCode = -40 // compression failed
	ResultInvalidBitsPerPoint   ResultCode = -41 // invalid bits per point
	ResultInvalidGroupArray     ResultCode = -42 // invalid group array
	ResultInvalidSectionArray   ResultCode = -43 // invalid section array
)

var resultCodes = newEnumTable(
	enumEntry[ResultCode]{ResultOK, "kdsOK"},
	enumEntry[ResultCode]{ResultGenericError, "kdsError"},
	enumEntry[ResultCode]{ResultInvalidFilename, "kdsInvalidFilename"},
	enumEntry[ResultCode]{ResultInvalidObject, "kdsInvalidObject"},
	enumEntry[ResultCode]{ResultInvalidInfos, "kdsInvalidInfos"},
	enumEntry[ResultCode]{ResultInvalidComment, "kdsInvalidComment"},
	enumEntry[ResultCode]{ResultInvalidPoints, "kdsInvalidPoints"},
	enumEntry[ResultCode]{ResultAlreadyOpen, "kdsAlreadyOpen"},
	enumEntry[ResultCode]{ResultNotEnoughMemory, "kdsNotEnoughMemory"},
	enumEntry[ResultCode]{ResultNotImplemented, "kdsNotImplemented"},
	enumEntry[ResultCode]{ResultInvalidPointSize, "kdsInvalidPointSize"},
	enumEntry[ResultCode]{ResultInvalid1stArg, "kdsInvalid1stArg"},
	enumEntry[ResultCode]{ResultInvalid2ndArg, "kdsInvalid2ndArg"},
	enumEntry[ResultCode]{ResultInvalid3rdArg, "kdsInvalid3rdArg"},
	enumEntry[ResultCode]{ResultInvalid4thArg, "kdsInvalid4thArg"},
	enumEntry[ResultCode]{ResultUnknownStudiable, "kdsUnknownStudiable"},
	enumEntry[ResultCode]{ResultWriteOnRead, "kdsWriteOnRead"},
	enumEntry[ResultCode]{ResultWrongObjectIndex, "kdsWrongObjectIndex"},
	enumEntry[ResultCode]{ResultWrongWriteOperation, "kdsWrongWriteOperation"},
	enumEntry[ResultCode]{ResultIOFileError, "kdsIOFileError"},
	enumEntry[ResultCode]{ResultNullPointer, "kdsNullPointer"},
	enumEntry[ResultCode]{ResultReadOnWrite, "kdsReadOnWrite"},
	enumEntry[ResultCode]{ResultUnknownFileFlags, "kdsUnknownFileFlags"},
	enumEntry[ResultCode]{ResultBadSize, "kdsBadSize"},
	enumEntry[ResultCode]{ResultRecordAlreadyInList, "kdsRecordAlreadyInList"},
	enumEntry[ResultCode]{ResultRecordNotInList, "kdsRecordNotInList"},
	enumEntry[ResultCode]{ResultUnknownRecordID, "kdsUnknownRecordID"},
	enumEntry[ResultCode]{ResultUnknownFileFormat, "kdsUnknownFileFormat"},
	enumEntry[ResultCode]{ResultBadObjectCount, "kdsBadObjectCount"},
	enumEntry[ResultCode]{ResultInvalidStudiableSize, "kdsInvalidStudiableSize"},
	enumEntry[ResultCode]{ResultInvalidXStep, "kdsInvalidXStep"},
	enumEntry[ResultCode]{ResultInvalidYStep, "kdsInvalidYStep"},
	enumEntry[ResultCode]{ResultInvalidZStep, "kdsInvalidZStep"},
	enumEntry[ResultCode]{ResultEmptyComment, "kdsEmptyComment"},
	enumEntry[ResultCode]{ResultWrongAPIVersion, "kdsWrongAPIVersion"},
	enumEntry[ResultCode]{ResultInvalidFileHandle, "kdsInvalidFileHandle"},
	enumEntry[ResultCode]{ResultInvalidParamProfInfo, "kdsInvalidParamProfileInfo"},
	enumEntry[ResultCode]{ResultInvalidWCount, "kdsInvalidWCount"},
	enumEntry[ResultCode]{ResultTotalPointsOverflow, "kdsTotalPointsCountOverflow"},
	enumEntry[ResultCode]{ResultCantChangeCompression, "kdsCantChangeCompression"},
	enumEntry[ResultCode]{ResultInvalidBooleanArg, "kdsInvalidBooleanArg"},
	enumEntry[ResultCode]{ResultCompressionFailure, "kdsCompressionFailure"},
	enumEntry[ResultCode]{ResultInvalidBitsPerPoint, "kdsInvalidBitsPerPoint"},
	enumEntry[ResultCode]{ResultInvalidGroupArray, "kdsInvalidGroupArray"},
	enumEntry[ResultCode]{ResultInvalidSectionArray, "kdsInvalidSectionArray"},
)

// LookupResult classifies a raw status. Values outside the taxonomy come
// back with ok == false; the returned code still carries the raw value so
// it can be reported.
func LookupResult(v int) (ResultCode, bool) {
	return resultCodes.lookup(v)
}

// ResultCodes returns every defined code in vendor order.
func ResultCodes() []ResultCode {
	return resultCodes.values()
}

// IsSuccess reports whether the raw status is the single success value.
func IsSuccess(v int) bool {
	return v == int(ResultOK)
}

// IsSuccess reports whether r is ResultOK.
func (r ResultCode) IsSuccess() bool { return r == ResultOK }

// Known reports whether r belongs to the taxonomy.
func (r ResultCode) Known() bool { return resultCodes.known(r) }

// Value returns the wire value.
func (r ResultCode) Value() int { return int(r) }

// String returns the vendor symbol, or "unrecognized".
func (r ResultCode) String() string { return resultCodes.name(r) }

// ResultError is a failed vendor call.
type ResultError struct {
	Op   string
	Code ResultCode
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("surfapi %s returned %s(%d)", e.Op, e.Code, int32(e.Code))
}

// NewResultError builds the error for a non-success code returned by op.
func NewResultError(op string, code ResultCode) *ResultError {
	return &ResultError{Op: op, Code: code}
}
