package enums

// Kind tags records in the collection output stream.
type Kind string

const (
	KindPolicyAssignment Kind = "IntunePolicyAssignment"
	KindPolicySummary    Kind = "IntunePolicySummary"
	KindPolicy           Kind = "IntunePolicy"
	KindGroup            Kind = "IntuneGroup"
)
