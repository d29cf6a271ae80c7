// Package domain holds the core types and interfaces of cryptkeep.
//
// It defines the encrypted store and mount target models, the contracts
// implemented by the external mount provider adapter and the host
// filesystem helpers, and the sentinel errors that commands translate
// into user-facing remedies.
package domain
