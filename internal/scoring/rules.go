package scoring

import "github.com/harrison/prebate/internal/models"

// Recommended action texts.
const (
	ActionJurisdiction       = "Laws vary outside Ireland—ensure local estate planning aligned to your jurisdiction."
	ActionSingleWill         = "If single, ensure you have a valid will to direct assets clearly."
	ActionGuardianship       = "Add guardianship and inheritance clauses for dependents in your will."
	ActionReviewAfterDivorce = "Review titles and beneficiaries after separation/divorce."
	ActionSoleProperty       = "Consider adding a joint owner (joint tenants), using a trust, or updating your will for solely-owned property."
	ActionJointTenancy       = "Convert co-owned property to joint tenancy where appropriate to enable automatic survivorship."
	ActionLandRegistry       = "Register any unregistered property with the Land Registry (get a folio number)."
	ActionForeignAssets      = "Create a local will or plan for assets held outside Ireland."
	ActionSoleAccount        = "For sole accounts, consider joint holder or pay-on-death nomination (if available)."
	ActionDocumentCareIntent = "Document the intent of caregiver/joint access (assistance vs inheritance) in writing with your solicitor."
	ActionRevokeInformal     = "Revoke informal access. Consider an Enduring Power of Attorney (EPA) if help is needed."
	ActionExpenseLog         = "Keep a simple log of legitimate expenses paid by helpers on your behalf."
	ActionJointAccount       = "Consider a joint account for shared household expenses to ease continuity for a partner."
	ActionNomineeAccounts    = "Hold investments via nominee accounts or trusts to simplify transfer."
	ActionConsolidate        = "Consolidate accounts to reduce admin burden on your executor."
	ActionLifeBeneficiary    = "Add a named beneficiary to life insurance so it bypasses probate."
	ActionPensionNomination  = "File a pension beneficiary nomination with your provider."
	ActionDeathInService     = "Confirm your employer nomination for death-in-service benefits."
	ActionCreateWill         = "Create a valid will—without one, intestacy rules apply."
	ActionUpdateWill         = "Review/update your will (aim every 3 years or upon life changes)."
	ActionStoreWill          = "Store your will with your solicitor or register a copy with the Probate Office."
	ActionInformExecutor     = "Inform your executor that they are named and where documents are kept."
	ActionReviewGifts        = "Have a solicitor review documentation for lifetime gifts/trusts."
	ActionSuccessionPlan     = "Create a succession/shareholder plan for your business interests."
	ActionTaxRelief          = "Explore Agricultural or Business Relief to optimize tax and transfer."
	ActionDigitalAssets      = "Document a digital asset plan (locations, instructions, and access)."
	ActionExpectedInherit    = "Coordinate your plan if you expect to inherit—timing/structure can reduce complexity."
)

// DefaultRules returns the estate readiness rule battery in evaluation order.
// A fresh slice is returned on every call.
func DefaultRules() []Rule {
	return []Rule{
		// Personal
		{Name: "non_resident", When: Is(models.LivesInIreland, models.No), Actions: []string{ActionJurisdiction}},
		{Name: "single", When: Is(models.HasPartner, models.No), Probate: 1, Actions: []string{ActionSingleWill}},
		{Name: "dependents", When: Is(models.HasChildren, models.Yes), Actions: []string{ActionGuardianship}},
		{Name: "divorced", When: Is(models.Divorced, models.Yes), Probate: 1, Actions: []string{ActionReviewAfterDivorce}},

		// Property
		{Name: "sole_property", When: Is(models.SoleProperty, models.Yes), Probate: 2, Actions: []string{ActionSoleProperty}},
		{
			Name:    "tenants_in_common",
			When:    All(Is(models.CoOwned, models.Yes), Is(models.JointTenants, models.No)),
			Probate: 1,
			Actions: []string{ActionJointTenancy},
		},
		{
			Name:    "unregistered_property",
			When:    OneOf(models.PropertyRegistered, models.No, models.NotSure),
			Probate: 1,
			Actions: []string{ActionLandRegistry},
		},
		{Name: "property_abroad", When: Is(models.PropertyAbroad, models.Yes), Probate: 1, Actions: []string{ActionForeignAssets}},

		// Banking and caregivers
		{Name: "sole_bank_account", When: Is(models.SoleBankAccount, models.Yes), Probate: 1, Actions: []string{ActionSoleAccount}},
		{
			Name:    "caregiver_official",
			When:    All(Is(models.CaregiverAccess, models.Yes), Is(models.CaregiverOfficial, models.Yes)),
			Dispute: 1,
			Actions: []string{ActionDocumentCareIntent},
		},
		{
			Name:    "caregiver_informal",
			When:    All(Is(models.CaregiverAccess, models.Yes), Is(models.CaregiverOfficial, models.No)),
			Probate: 1,
			Dispute: 2,
			Actions: []string{ActionRevokeInformal, ActionExpenseLog},
		},
		{Name: "no_joint_account", When: Is(models.JointBankAccount, models.No), Actions: []string{ActionJointAccount}},
		{Name: "investments", When: Is(models.Investments, models.Yes), Probate: 1, Actions: []string{ActionNomineeAccounts}},
		{Name: "multiple_brokers", When: Is(models.MultipleBrokers, models.Yes), Actions: []string{ActionConsolidate}},

		// Insurance and pensions
		{
			Name:    "life_no_beneficiary",
			When:    All(Is(models.LifeInsurance, models.Yes), Is(models.LifeBeneficiary, models.No)),
			Probate: 1,
			Actions: []string{ActionLifeBeneficiary},
		},
		{
			Name:    "pension_no_nomination",
			When:    All(Is(models.Pension, models.Yes), Is(models.PensionBeneficiary, models.No)),
			Probate: 1,
			Actions: []string{ActionPensionNomination},
		},
		{Name: "death_in_service", When: Is(models.DeathInService, models.Yes), Actions: []string{ActionDeathInService}},

		// Will and planning
		{Name: "no_will", When: Is(models.HasWill, models.No), Probate: 2, Actions: []string{ActionCreateWill}},
		{
			Name:    "outdated_will",
			When:    All(Is(models.HasWill, models.Yes), Is(models.WillRecent, models.No)),
			Probate: 1,
			Actions: []string{ActionUpdateWill},
		},
		{Name: "will_not_stored", When: Is(models.WillStored, models.No), Actions: []string{ActionStoreWill}},
		{Name: "executor_uninformed", When: Is(models.ExecutorInformed, models.No), Actions: []string{ActionInformExecutor}},
		{Name: "lifetime_gifts", When: Is(models.LifetimeGifts, models.Yes), Actions: []string{ActionReviewGifts}},

		// Special assets
		{Name: "business", When: Is(models.OwnsBusiness, models.Yes), Probate: 1, Actions: []string{ActionSuccessionPlan}},
		{Name: "farmland", When: Is(models.Farmland, models.Yes), Actions: []string{ActionTaxRelief}},
		{Name: "digital_assets", When: Is(models.DigitalAssets, models.Yes), Actions: []string{ActionDigitalAssets}},
		{Name: "expected_inheritance", When: Is(models.ExpectsInheritance, models.Yes), Actions: []string{ActionExpectedInherit}},
	}
}
