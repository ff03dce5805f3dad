package models

import (
	"errors"
	"fmt"
	"strings"
)

// QuestionID identifies a question in the estate readiness questionnaire.
// The set of valid identifiers is closed; see KnownQuestionIDs.
type QuestionID string

// Canonical question identifiers in default display order.
const (
	LivesInIreland     QuestionID = "lives_in_ireland"
	HasPartner         QuestionID = "has_partner"
	HasChildren        QuestionID = "has_children"
	Divorced           QuestionID = "divorced"
	SoleProperty       QuestionID = "sole_property"
	CoOwned            QuestionID = "co_owned"
	JointTenants       QuestionID = "joint_tenants"
	PropertyRegistered QuestionID = "property_registered"
	PropertyAbroad     QuestionID = "property_abroad"
	SoleBankAccount    QuestionID = "sole_bank_account"
	CaregiverAccess    QuestionID = "caregiver_access"
	CaregiverOfficial  QuestionID = "caregiver_official"
	JointBankAccount   QuestionID = "joint_bank_account"
	Investments        QuestionID = "investments"
	MultipleBrokers    QuestionID = "multiple_brokers"
	LifeInsurance      QuestionID = "life_insurance"
	LifeBeneficiary    QuestionID = "life_beneficiary"
	Pension            QuestionID = "pension"
	PensionBeneficiary QuestionID = "pension_beneficiary"
	DeathInService     QuestionID = "death_in_service"
	HasWill            QuestionID = "has_will"
	WillRecent         QuestionID = "will_recent"
	WillStored         QuestionID = "will_stored"
	ExecutorInformed   QuestionID = "executor_informed"
	LifetimeGifts      QuestionID = "lifetime_gifts"
	OwnsBusiness       QuestionID = "owns_business"
	Farmland           QuestionID = "farmland"
	DigitalAssets      QuestionID = "digital_assets"
	ExpectsInheritance QuestionID = "expects_inheritance"
)

// KnownQuestionIDs lists every valid QuestionID in default display order.
var KnownQuestionIDs = []QuestionID{
	LivesInIreland, HasPartner, HasChildren, Divorced,
	SoleProperty, CoOwned, JointTenants, PropertyRegistered, PropertyAbroad,
	SoleBankAccount, CaregiverAccess, CaregiverOfficial, JointBankAccount, Investments, MultipleBrokers,
	LifeInsurance, LifeBeneficiary, Pension, PensionBeneficiary, DeathInService,
	HasWill, WillRecent, WillStored, ExecutorInformed, LifetimeGifts,
	OwnsBusiness, Farmland, DigitalAssets, ExpectsInheritance,
}

var knownQuestionIDs = func() map[QuestionID]bool {
	m := make(map[QuestionID]bool, len(KnownQuestionIDs))
	for _, id := range KnownQuestionIDs {
		m[id] = true
	}
	return m
}()

// IsKnown reports whether id belongs to the closed set of question identifiers.
func (id QuestionID) IsKnown() bool {
	return knownQuestionIDs[id]
}

// Answer is a recorded response. Unanswered is an explicit variant and is
// never equal to No.
type Answer string

const (
	Unanswered Answer = ""
	Yes        Answer = "Yes"
	No         Answer = "No"
	NotSure    Answer = "Not sure"
)

// ParseAnswerToken maps a typed or stored answer to an Answer, ignoring
// case and surrounding space: y/yes, n/no, and u/?/unsure/not sure.
func ParseAnswerToken(s string) (Answer, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return Yes, true
	case "n", "no":
		return No, true
	case "u", "?", "unsure", "not sure":
		return NotSure, true
	default:
		return Unanswered, false
	}
}

// AnswerKind determines which answers a question accepts.
type AnswerKind string

const (
	// KindBinary accepts Yes or No.
	KindBinary AnswerKind = "binary"
	// KindTernary accepts Yes, Not sure or No.
	KindTernary AnswerKind = "ternary"
)

// Options returns the allowed answers for the kind in display order.
// An unknown kind has no options.
func (k AnswerKind) Options() []Answer {
	switch k {
	case KindBinary:
		return []Answer{Yes, No}
	case KindTernary:
		return []Answer{Yes, NotSure, No}
	default:
		return nil
	}
}

// Allows reports whether a is an allowed answer for the kind.
func (k AnswerKind) Allows(a Answer) bool {
	for _, opt := range k.Options() {
		if opt == a {
			return true
		}
	}
	return false
}

// Condition is one (question, required answer) pair of a visibility rule.
type Condition struct {
	QuestionID QuestionID
	Answer     Answer
}

// Question is an immutable question definition.
type Question struct {
	ID     QuestionID  // Unique key
	Prompt string      // Text shown to the user
	Kind   AnswerKind  // Allowed answer set
	ShowIf []Condition // All pairs must match for the question to be shown (optional)
}

// Options returns the answers the question accepts.
func (q *Question) Options() []Answer {
	return q.Kind.Options()
}

// Allows reports whether a is an allowed answer for the question.
func (q *Question) Allows(a Answer) bool {
	return q.Kind.Allows(a)
}

// IsConditional returns true if the question has a visibility condition.
func (q *Question) IsConditional() bool {
	return len(q.ShowIf) > 0
}

// Validate checks the fields of a single question in isolation.
// Cross-question checks live in the parser.
func (q *Question) Validate() error {
	if q.ID == "" {
		return errors.New("question id is required")
	}
	if !q.ID.IsKnown() {
		return fmt.Errorf("unknown question id %q", q.ID)
	}
	if q.Prompt == "" {
		return errors.New("question prompt is required")
	}
	if len(q.Kind.Options()) == 0 {
		return fmt.Errorf("invalid kind %q: must be 'binary' or 'ternary'", q.Kind)
	}
	return nil
}
