package constant

const (
	DebugIndent = "    "
	NewLine     = "\n"
	Null        = "null"
	Empty       = ""
)

const (
	StdinPath = "-"
)
