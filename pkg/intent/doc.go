// Package intent defines the closed vocabularies an operator chooses from:
// the failure Intent, the network Topology and the Transport.
//
// Each type is a string enumeration with IsValid and String methods, a
// Supported* listing in declaration order and a Parse* function that returns
// an INVALID_ARGUMENT error, with a spelling suggestion when one is close,
// for anything outside the set:
//
//	i, err := intent.ParseIntent("stal")
//	// err: invalid intent: "stal", supported values: [stall flap churn storm] (did you mean "stall"?)
//
// Adding an Intent means adding the constant here, appending it to the
// declaration list, and adding its scenario to the catalog in the same
// change. The catalog package refuses to load when the two disagree.
package intent
