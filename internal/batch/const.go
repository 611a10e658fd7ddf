package batch

const (
	Digits        = 4 // decimals kept (truncated) after the point in the report
	ConfigPath    = "jobs/config.json"
	rawHeaderSize = 4  // int32 record count
	rawRecordSize = 20 // float64 re + float64 im + int32 category
)
