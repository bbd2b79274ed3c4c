package models

// ConfigurationValue is the key/value pair tracked by the audited
// configuration table.
type ConfigurationValue struct {
	Key   string `json:"key" dynamodbav:"key"`
	Value int    `json:"value" dynamodbav:"value"`
}

// AuditRecord captures one change observed on the configuration table
// stream.
//
// For an insert, NewValue holds the full ConfigurationValue and the MODIFY
// fields stay empty. For a modification, OldValue and NewValue hold the bare
// integers and UpdatedAttribute names the changed attribute.
type AuditRecord struct {
	ID               string `json:"id" dynamodbav:"id"`
	ItemKey          string `json:"itemKey" dynamodbav:"itemKey"`
	ModificationTime string `json:"modificationTime" dynamodbav:"modificationTime"`
	NewValue         any    `json:"newValue,omitempty" dynamodbav:"newValue,omitempty"`
	OldValue         *int   `json:"oldValue,omitempty" dynamodbav:"oldValue,omitempty"`
	UpdatedAttribute string `json:"updatedAttribute,omitempty" dynamodbav:"updatedAttribute,omitempty"`
}
