package logging

import "github.com/fatih/color"

// Color sprint functions for CLI chrome (headers, hints, errors).
// These respect NO_COLOR and non-TTY environments automatically,
// unlike the styles applied to records.
var (
	Red  = color.New(color.FgRed).SprintFunc()
	Bold = color.New(color.Bold).SprintFunc()
	Dim  = color.New(color.Faint).SprintFunc()
)
