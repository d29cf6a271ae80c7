// Package vault manages an encrypted store at rest: creating it and
// changing its password. Both operations delegate the actual
// cryptography to the external provider.
package vault
