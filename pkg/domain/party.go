package domain

import (
	"time"

	"github.com/google/uuid"
)

// PartyID uniquely identifies a party on a report.
// It wraps uuid.UUID to provide type safety at the domain layer.
type PartyID uuid.UUID

// LinkID uniquely identifies a collection link issued to a party.
// Only the identifier is persisted; the signed token itself never is.
type LinkID uuid.UUID

// PartyRole describes the capacity in which a party appears on a report.
type PartyRole string

const (
	// PartyRoleTransferee is a buyer of the property.
	PartyRoleTransferee PartyRole = "TRANSFEREE"
	// PartyRoleTransferor is a seller of the property.
	PartyRoleTransferor PartyRole = "TRANSFEROR"
	// PartyRoleBeneficialOwner is an individual who ultimately owns or
	// controls a transferee entity.
	PartyRoleBeneficialOwner PartyRole = "BENEFICIAL_OWNER"
	// PartyRoleTrustee administers a transferee trust.
	PartyRoleTrustee PartyRole = "TRUSTEE"
	// PartyRoleSettlor created a transferee trust.
	PartyRoleSettlor PartyRole = "SETTLOR"
	// PartyRoleBeneficiary benefits from a transferee trust.
	PartyRoleBeneficiary PartyRole = "BENEFICIARY"
	// PartyRoleReportingPerson is the closing professional responsible
	// for the filing.
	PartyRoleReportingPerson PartyRole = "REPORTING_PERSON"
)

// PartyStatus represents the collection lifecycle of a single party.
type PartyStatus string

const (
	// PartyStatusPending indicates the party slot exists but no link has been sent.
	PartyStatusPending PartyStatus = "PENDING"
	// PartyStatusLinkSent indicates a collection link was issued and delivered.
	PartyStatusLinkSent PartyStatus = "LINK_SENT"
	// PartyStatusInProgress indicates the party opened the link and saved partial data.
	PartyStatusInProgress PartyStatus = "IN_PROGRESS"
	// PartyStatusSubmitted indicates the party submitted their information.
	PartyStatusSubmitted PartyStatus = "SUBMITTED"
	// PartyStatusVerified indicates submitted information passed review.
	PartyStatusVerified PartyStatus = "VERIFIED"
	// PartyStatusCancelled indicates the party slot was withdrawn from the report.
	PartyStatusCancelled PartyStatus = "CANCELLED"
)

// Collected reports whether the party needs no further collection work.
func (s PartyStatus) Collected() bool {
	return s == PartyStatusSubmitted || s == PartyStatusVerified
}

// PartyData holds the personally identifying information collected from a
// party. Fields are optional until submission; validation decides which ones
// are required for a given role.
type PartyData struct {
	// LegalName is the full legal name of an individual, or the registered
	// name of an entity or trust.
	LegalName string `json:"legalName,omitempty"`
	// DateOfBirth applies to individuals only, formatted as YYYY-MM-DD.
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	// Address is the current residential or business street address.
	Address string `json:"address,omitempty"`
	// City, State and PostalCode complete the address.
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	// SSNLast4 is the last four digits of an individual's SSN.
	SSNLast4 string `json:"ssnLast4,omitempty"`
	// EIN is an entity's employer identification number, formatted NN-NNNNNNN.
	EIN string `json:"ein,omitempty"`
	// Email is the contact address collection links are delivered to.
	Email string `json:"email,omitempty"`
	// CitizenshipCountry is the ISO country of citizenship for individuals.
	CitizenshipCountry string `json:"citizenshipCountry,omitempty"`
	// OwnershipPercent applies to beneficial owners.
	OwnershipPercent float64 `json:"ownershipPercent,omitempty"`
}

// Party represents one person, entity or trust attached to a report together
// with its collection state.
type Party struct {
	// ID is the unique identifier of the party.
	ID PartyID `json:"id"`
	// ReportID is the report this party belongs to.
	ReportID ReportID `json:"reportId"`

	// Role is the capacity in which the party appears on the report.
	Role PartyRole `json:"role"`
	// Status is the current collection state of the party.
	Status PartyStatus `json:"status"`
	// Data holds whatever information has been collected so far.
	Data PartyData `json:"data"`

	// CreatedAt is the time when the party slot was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the party was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the party was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// LinkStatus represents the lifecycle of a collection link.
type LinkStatus string

const (
	// LinkStatusActive indicates the link can still be redeemed.
	LinkStatusActive LinkStatus = "ACTIVE"
	// LinkStatusUsed indicates the link was redeemed for a submission.
	LinkStatusUsed LinkStatus = "USED"
	// LinkStatusExpired indicates the link passed its expiry before use.
	LinkStatusExpired LinkStatus = "EXPIRED"
	// LinkStatusRevoked indicates the link was withdrawn before use.
	LinkStatusRevoked LinkStatus = "REVOKED"
)

// PartyLink is a single-use collection link issued to a party. The signed
// token embeds the link ID; the row records redemption state so a token can
// be accepted at most once.
type PartyLink struct {
	// ID is the unique identifier embedded in the signed token.
	ID LinkID `json:"id"`
	// PartyID is the party this link collects information for.
	PartyID PartyID `json:"partyId"`

	// Status is the redemption state of the link.
	Status LinkStatus `json:"status"`
	// ExpiresAt is the time after which the link can no longer be redeemed.
	ExpiresAt time.Time `json:"expiresAt"`
	// UsedAt is the time the link was redeemed; zero value means not used.
	UsedAt time.Time `json:"usedAt,omitempty"`

	// CreatedAt is the time when the link was issued.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the link was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Redeemable reports whether the link can be accepted at the given time.
func (l PartyLink) Redeemable(now time.Time) bool {
	return l.Status == LinkStatusActive && now.Before(l.ExpiresAt)
}
