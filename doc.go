// Package primseq provides primitive-kind-specialized containers:
// immutable ordered sequence adapters with a uniform query, transform
// and reduce protocol, and stateless factories for mutable hash sets.
//
// The generic core lives in seq; charseq is the character
// instantiation over a plain string. The mutable collaborators live in
// set, bag and list. No element is ever boxed: every container is
// monomorphic to one primitive element kind chosen at instantiation.
package primseq
