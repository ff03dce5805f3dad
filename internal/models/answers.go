package models

// AnswerSet maps question ids to recorded answers.
// A missing entry reads as Unanswered.
type AnswerSet map[QuestionID]Answer

// Get returns the recorded answer or Unanswered.
func (a AnswerSet) Get(id QuestionID) Answer {
	if a == nil {
		return Unanswered
	}
	return a[id]
}

// Is reports whether id was answered with want. Unanswered never matches.
func (a AnswerSet) Is(id QuestionID, want Answer) bool {
	got := a.Get(id)
	return got != Unanswered && got == want
}

// Has reports whether id has a recorded answer.
func (a AnswerSet) Has(id QuestionID) bool {
	return a.Get(id) != Unanswered
}

// Clone returns an independent copy.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
