package enums

const (
	FILE_CONTENT_TYPE_CANVAS = "text/plain"
	FILE_PREFIX_CANVAS       = "whiteboards"
)
