package formatter

type GeneralIssueFormatter struct{}

func (f *GeneralIssueFormatter) IssueTemplate() string {
	return `{{header .Reason .File .Proof .Step}}
{{gutter .Padding}}
{{message .Message .Padding}}

`
}

// BuildIssueFormatter renders proofs that could not be built from their
// document, so verification never ran.
type BuildIssueFormatter struct{}

func (f *BuildIssueFormatter) IssueTemplate() string {
	return `{{header .Reason .File .Proof .Step}}
{{gutter .Padding}}
{{message .Message .Padding}}
{{note "the proof was not verified"}}

`
}
