// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Status tags a result envelope as a success or an error. Every tool
// operation returns exactly one envelope; there is no partial-success variant.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// AnswerType classifies the outcome of the keyword relevance scorer.
type AnswerType string

const (
	// AnswerNotEnoughKeywords means the question contained no significant
	// keywords after stop-word removal.
	AnswerNotEnoughKeywords AnswerType = "not_enough_keywords"

	// AnswerFoundInAbstract means more than half of the question's
	// significant keywords occur in the abstract.
	AnswerFoundInAbstract AnswerType = "found_in_abstract"

	// AnswerNotFoundInAbstract means half or fewer of the question's
	// significant keywords occur in the abstract.
	AnswerNotFoundInAbstract AnswerType = "not_found_in_abstract"
)

// SearchEnvelope is the result of the search operation. On success Papers
// holds up to five records; when the query matched nothing Papers is an empty
// array (never nil) and Message explains the empty result.
type SearchEnvelope struct {
	Status  Status  `json:"status" yaml:"status"`
	Papers  []Paper `json:"papers" yaml:"papers"`
	Message string  `json:"message,omitempty" yaml:"message,omitempty"`
}

// PaperEnvelope is the result of the summarize operation: a single Paper on
// success, or an error message.
type PaperEnvelope struct {
	Status  Status `json:"status" yaml:"status"`
	Paper   *Paper `json:"paper,omitempty" yaml:"paper,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// AnswerEnvelope is the result of the answer operation. On success it carries
// the scorer's classification plus the abstract and title so the caller can
// interpret the verdict without a second fetch.
type AnswerEnvelope struct {
	Status     Status     `json:"status" yaml:"status"`
	AnswerType AnswerType `json:"answer_type,omitempty" yaml:"answer_type,omitempty"`
	Message    string     `json:"message,omitempty" yaml:"message,omitempty"`
	Abstract   string     `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Title      string     `json:"title,omitempty" yaml:"title,omitempty"`
}
