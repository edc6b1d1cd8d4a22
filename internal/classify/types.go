package classify

// UseCaseKeywords maps a project category to the words that signal it in a
// free-form description.
type UseCaseKeywords map[string][]string

// Classification is the result of scoring a project description against the
// use-case lexicon.
type Classification struct {
	Primary    string   `json:"primary" yaml:"primary"`
	Confidence float64  `json:"confidence" yaml:"confidence"`
	Features   []string `json:"features" yaml:"features"`
}
