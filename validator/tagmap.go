package validator

var tagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"oneof":     "invalid_choice",
	"datetime":  "invalid_datetime",
	"timezone":  "invalid_timezone",
	"max":       "too_long",
	"min":       "too_short",
	"len":       "invalid_length",
	"file":      "file_not_found",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
