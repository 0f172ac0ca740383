// Package types defines the activity entity, the field patch used for partial
// updates, the repository interface, configuration, and the standard errors
// for the activity log.
package types
