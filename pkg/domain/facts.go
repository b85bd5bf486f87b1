package domain

import "time"

// PropertyType classifies the real property being transferred.
type PropertyType string

const (
	// PropertyTypeResidential covers 1-4 family residential property.
	PropertyTypeResidential PropertyType = "RESIDENTIAL_1_4"
	// PropertyTypeVacantLand covers unimproved land. Reportability depends on
	// the buyer's stated intent to build a residence (see TransactionFacts.IntentToBuild).
	PropertyTypeVacantLand PropertyType = "VACANT_LAND"
	// PropertyTypeMixedUse covers property combining residential and commercial use.
	PropertyTypeMixedUse PropertyType = "MIXED_USE"
	// PropertyTypeCommercial covers purely non-residential property.
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
)

// FinancingType classifies how the purchase is funded.
type FinancingType string

const (
	// FinancingTypeCash indicates an all-cash (non-financed) purchase.
	FinancingTypeCash FinancingType = "CASH"
	// FinancingTypeRegulatedLender indicates financing extended by a lender
	// subject to federal AML program obligations.
	FinancingTypeRegulatedLender FinancingType = "REGULATED_LENDER"
	// FinancingTypePrivateLender indicates financing by a non-regulated private lender.
	FinancingTypePrivateLender FinancingType = "PRIVATE_LENDER"
	// FinancingTypeSellerFinanced indicates the transferor carries the financing.
	FinancingTypeSellerFinanced FinancingType = "SELLER_FINANCED"
)

// BuyerCategory is the exemption category bucket the transferee falls into.
// The category decides which exemption rule list applies.
type BuyerCategory string

const (
	// BuyerCategoryUnset means the buyer-type step has not been answered yet.
	BuyerCategoryUnset BuyerCategory = ""
	// BuyerCategoryIndividual is a natural-person transferee.
	BuyerCategoryIndividual BuyerCategory = "INDIVIDUAL"
	// BuyerCategoryEntity is a legal-entity transferee (corporation, LLC, partnership).
	BuyerCategoryEntity BuyerCategory = "ENTITY"
	// BuyerCategoryTrust is a trust transferee.
	BuyerCategoryTrust BuyerCategory = "TRUST"
)

// TransactionFacts is the immutable snapshot of transaction attributes the
// determination runs against. It is created when the determination phase
// starts and replaced wholesale on edit; no partial mutation happens while an
// evaluation is in flight.
type TransactionFacts struct {
	// PropertyType is the kind of property being transferred.
	PropertyType PropertyType `json:"propertyType"`
	// IntentToBuild reports whether vacant land is purchased with the intent
	// to build a 1-4 family residence. Only meaningful for vacant land.
	IntentToBuild bool `json:"intentToBuild"`
	// FinancingType is how the purchase is funded.
	FinancingType FinancingType `json:"financingType"`
	// LenderAMLScreened reports whether a regulated lender ran AML screening
	// on the transaction. True short-circuits the determination to exempt.
	LenderAMLScreened bool `json:"lenderAmlScreened"`
	// BuyerCategory is the transferee's exemption category, unset until the
	// buyer-type step resolves it.
	BuyerCategory BuyerCategory `json:"buyerCategory"`
	// PurchasePriceCents is the total consideration in cents. Zero means a
	// non-monetary or no-consideration transfer.
	PurchasePriceCents int64 `json:"purchasePriceCents"`
	// ClosingDate is the expected or actual closing date.
	ClosingDate time.Time `json:"closingDate"`
	// ClaimedExemptions are exemption codes the filer asserts apply. Claims
	// are still verified against the category's rule list during evaluation.
	ClaimedExemptions []ReasonCode `json:"claimedExemptions,omitempty"`
}

// HasClaimed reports whether the given exemption code was claimed by the filer.
func (f TransactionFacts) HasClaimed(code ReasonCode) bool {
	for _, c := range f.ClaimedExemptions {
		if c == code {
			return true
		}
	}

	return false
}
