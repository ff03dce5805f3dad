// Package questionnaire implements the question flow controller.
//
// A Session walks a fixed ordered QuestionSet, skipping questions whose
// visibility condition does not hold, recording answers and supporting
// backward navigation. It performs no I/O; rendering and input belong to
// the interview and display packages.
package questionnaire

import "github.com/harrison/prebate/internal/models"

// Visible reports whether q should be shown under answers: it has no
// condition, or every (id, answer) pair matches exactly. A missing answer
// never matches.
func Visible(q *models.Question, answers models.AnswerSet) bool {
	for _, cond := range q.ShowIf {
		if !answers.Is(cond.QuestionID, cond.Answer) {
			return false
		}
	}
	return true
}

// Advance scans forward from position (inclusive) and returns the first
// index whose question is visible, or set.Len() when none remain.
func Advance(set *models.QuestionSet, position int, answers models.AnswerSet) int {
	if position < 0 {
		position = 0
	}
	n := set.Len()
	for position < n && !Visible(set.At(position), answers) {
		position++
	}
	if position > n {
		return n
	}
	return position
}

// CountProgress returns the visible question count and how many of those
// have a recorded answer. Hidden questions are excluded even when a stale
// answer exists for them.
func CountProgress(set *models.QuestionSet, answers models.AnswerSet) models.Progress {
	var p models.Progress
	for i := range set.Questions {
		q := set.At(i)
		if !Visible(q, answers) {
			continue
		}
		p.Visible++
		if answers.Has(q.ID) {
			p.Answered++
		}
	}
	return p
}

// FilterVisible returns a copy of answers restricted to questions that are
// currently visible. Answers for ids not in the set are dropped.
func FilterVisible(set *models.QuestionSet, answers models.AnswerSet) models.AnswerSet {
	out := make(models.AnswerSet)
	for i := range set.Questions {
		q := set.At(i)
		if a := answers.Get(q.ID); a != models.Unanswered && Visible(q, answers) {
			out[q.ID] = a
		}
	}
	return out
}

// StaleAnswers returns ids of hidden questions that still hold an answer,
// in sequence order.
func StaleAnswers(set *models.QuestionSet, answers models.AnswerSet) []models.QuestionID {
	var stale []models.QuestionID
	for i := range set.Questions {
		q := set.At(i)
		if answers.Has(q.ID) && !Visible(q, answers) {
			stale = append(stale, q.ID)
		}
	}
	return stale
}
