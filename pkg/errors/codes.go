package errors

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every layer.
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeInvalidParam   ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeValidation     ErrorCode = "COMMON_004"
	ErrCodeSerialization  ErrorCode = "COMMON_005"
	ErrCodeNotImplemented ErrorCode = "COMMON_006"
)

// Ink pipeline error codes.  INK_* codes are the sample-level hard errors of
// the extraction pipeline; stage-local anomalies (malformed coordinate
// tokens, degenerate strokes) are absorbed with fallbacks and never surface
// as errors.
const (
	// ErrCodeMissingIdentifier indicates a sample whose identifier annotation
	// is absent or empty.  The sample is excluded from the output set.
	ErrCodeMissingIdentifier ErrorCode = "INK_001"

	// ErrCodeEmptyStrokeSet indicates a sample with zero strokes (or strokes
	// that contain no points at all) after parsing.  No bounding box can be
	// computed for such a sample.
	ErrCodeEmptyStrokeSet ErrorCode = "INK_002"

	// ErrCodeUnknownLabel indicates an identifier with no ground-truth entry.
	ErrCodeUnknownLabel ErrorCode = "INK_003"

	// ErrCodeInkMLParse indicates an InkML document that could not be
	// decoded at all (not a single-token anomaly, which is recovered).
	ErrCodeInkMLParse ErrorCode = "INK_004"
)

// Data layer error codes (discovery, ground truth, dataset output).
const (
	ErrCodeDiscovery        ErrorCode = "DATA_001"
	ErrCodeGroundTruthLoad  ErrorCode = "DATA_002"
	ErrCodeDatasetWrite     ErrorCode = "DATA_003"
	ErrCodeSampleSourceRead ErrorCode = "DATA_004"
)
