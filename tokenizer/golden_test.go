package tokenizer

import (
	"encoding/json"
	"flag"
	"os"
	"reflect"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase pins the full normalization + tokenization pipeline on realistic
// article snippets.
type goldenCase struct {
	Name          string   `json:"name"`
	Input         string   `json:"input"`
	WantWords     []string `json:"want_words"`     // Words(input, true)
	WantSentences []string `json:"want_sentences"` // Sentences(input)
}

const goldenPath = "testdata/golden.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			if got := Words(tc.Input, true); !reflect.DeepEqual(got, tc.WantWords) {
				t.Errorf("Words(%q, true) = %q, want %q", tc.Input, got, tc.WantWords)
			}
			if got := Sentences(tc.Input); !reflect.DeepEqual(got, tc.WantSentences) {
				t.Errorf("Sentences(%q) = %q, want %q", tc.Input, got, tc.WantSentences)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		tc.WantWords = Words(tc.Input, true)
		tc.WantSentences = Sentences(tc.Input)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}

	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff tokenizer/testdata/golden.json")
}
