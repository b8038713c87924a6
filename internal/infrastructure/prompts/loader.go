package prompts

import (
	_ "embed"
)

//go:embed extraction.txt
var ExtractionPrompt string

//go:embed report.txt
var ReportPrompt string
