package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"
	CodeSinkWriteError   Code = "SINK_WRITE_ERROR"
	CodeNotInitialized   Code = "NOT_INITIALIZED"
	CodeInputReadError   Code = "INPUT_READ_ERROR"
)

func (c Code) String() string {
	return string(c)
}
