package models

// QuestionSet is the fixed ordered sequence of questions for a session.
// Order defines display order and back/forward traversal.
type QuestionSet struct {
	Name      string     // Set name (informational)
	Questions []Question // Ordered questions
	FilePath  string     // Source file, empty for the embedded set
	byID      map[QuestionID]int
}

// NewQuestionSet builds a QuestionSet and its id index.
// Duplicate ids keep the first occurrence in the index; the parser rejects
// them before a set reaches a session.
func NewQuestionSet(name string, questions []Question) *QuestionSet {
	set := &QuestionSet{
		Name:      name,
		Questions: questions,
		byID:      make(map[QuestionID]int, len(questions)),
	}
	for i, q := range questions {
		if _, exists := set.byID[q.ID]; !exists {
			set.byID[q.ID] = i
		}
	}
	return set
}

// Len returns the number of questions.
func (s *QuestionSet) Len() int {
	return len(s.Questions)
}

// At returns the question at index i.
func (s *QuestionSet) At(i int) *Question {
	return &s.Questions[i]
}

// Index returns the position of id in the sequence.
func (s *QuestionSet) Index(id QuestionID) (int, bool) {
	i, ok := s.byID[id]
	return i, ok
}

// Lookup returns the question with the given id.
func (s *QuestionSet) Lookup(id QuestionID) (*Question, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.Questions[i], true
}
