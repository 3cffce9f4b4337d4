package shared

import (
	"hotelclient/shared/constant"
	"strings"
)

// ToIndentedString renders a value for a multi-line debug block. Absent values print
// as null and every continuation line is indented one level.
func ToIndentedString(value string, present bool) string {
	if !present {
		return constant.Null
	}

	return strings.ReplaceAll(value, constant.NewLine, constant.NewLine+constant.DebugIndent)
}

// OptionalString returns nil for an empty string so it can be omitted from a payload.
func OptionalString(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}
