package metaf

import (
	"metaf/internal/group"
	"metaf/internal/syntax"
)

// Result is the output of Parse: the disambiguated report kind, the error
// kind (NONE on success), and the ordered list of recognized groups.
type Result struct {
	Kind   syntax.ReportKind
	Error  syntax.ErrorKind
	Groups []group.Group
}

// GroupInfo is one entry of a ResultExtended: the recognized group, the
// section it was recognized in, and the original whitespace-joined source
// substring (several raw tokens when the combiner fused more than one).
type GroupInfo struct {
	Group  group.Group
	Section syntax.Section
	Raw    string
}

// ResultExtended is Result but with per-group section and raw-source
// tracking, for callers that need to explain or re-render a parse.
type ResultExtended struct {
	Kind   syntax.ReportKind
	Error  syntax.ErrorKind
	Groups []GroupInfo
}
