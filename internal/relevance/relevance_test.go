// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"reflect"
	"testing"

	"github.com/pdiddy/arxiv-tools/pkg/types"
)

func TestKeywords(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{"drops stop words", "what is the transformer architecture", []string{"transformer", "architecture"}},
		{"all stop words", "the a an", nil},
		{"empty question", "", nil},
		{"punctuation only", "?!...", nil},
		{"lower-cases tokens", "Neural NETWORKS", []string{"neural", "networks"}},
		{"splits on punctuation", "gradient-descent, convergence?", []string{"gradient", "descent", "convergence"}},
		{"keeps duplicates", "waves waves", []string{"waves", "waves"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keywords(tt.question)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keywords(%q) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		abstract string
		want     types.AnswerType
	}{
		{
			name:     "all stop words",
			question: "the a an",
			abstract: "Any abstract at all.",
			want:     types.AnswerNotEnoughKeywords,
		},
		{
			name:     "empty question",
			question: "",
			abstract: "Any abstract at all.",
			want:     types.AnswerNotEnoughKeywords,
		},
		{
			name:     "both keywords present",
			question: "neural networks",
			abstract: "We study neural networks for sequence modeling.",
			want:     types.AnswerFoundInAbstract,
		},
		{
			name:     "one of four keywords present",
			question: "quantum gravity dark matter",
			abstract: "A survey of quantum computing.",
			want:     types.AnswerNotFoundInAbstract,
		},
		{
			name:     "exactly half is not enough",
			question: "neural networks",
			abstract: "We study neural architectures.",
			want:     types.AnswerNotFoundInAbstract,
		},
		{
			name:     "two of three keywords suffice",
			question: "transformer attention scaling",
			abstract: "The transformer relies entirely on attention.",
			want:     types.AnswerFoundInAbstract,
		},
		{
			name:     "matching is case-insensitive",
			question: "BERT pretraining",
			abstract: "We introduce bert, a pretraining method.",
			want:     types.AnswerFoundInAbstract,
		},
		{
			name:     "substring containment matches inside words",
			question: "cat dog",
			abstract: "A new category of dogmatic systems.",
			want:     types.AnswerFoundInAbstract,
		},
		{
			name:     "stop words removed before scoring",
			question: "What about gravitational waves?",
			abstract: "This paper studies gravitational waves.",
			want:     types.AnswerFoundInAbstract,
		},
		{
			name:     "empty abstract",
			question: "neural networks",
			abstract: "",
			want:     types.AnswerNotFoundInAbstract,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.question, tt.abstract)
			if got.Type != tt.want {
				t.Errorf("Classify(%q, %q).Type = %q, want %q", tt.question, tt.abstract, got.Type, tt.want)
			}
			if got.Message == "" {
				t.Error("Classify should return a non-empty message")
			}
		})
	}
}

func TestClassifyMessages(t *testing.T) {
	if r := Classify("the", "x"); r.Message != msgNotEnoughKeywords {
		t.Errorf("not_enough_keywords message = %q", r.Message)
	}
	if r := Classify("gravitational waves", "gravitational waves"); r.Message != msgFoundInAbstract {
		t.Errorf("found_in_abstract message = %q", r.Message)
	}
	if r := Classify("gravitational waves", "nothing relevant"); r.Message != msgNotFound {
		t.Errorf("not_found_in_abstract message = %q", r.Message)
	}
}

func TestStopWordSetContents(t *testing.T) {
	for _, w := range []string{"the", "a", "an", "what", "is", "about"} {
		if !stopWords[w] {
			t.Errorf("stop-word set should contain %q", w)
		}
	}
	if stopWords["gravitational"] {
		t.Error("stop-word set should not contain content words")
	}
}
