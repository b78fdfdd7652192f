package output

// SchemaVersion is the current version of the report schema published by
// `errlens schema`. Increment this when making breaking changes to the report.
const SchemaVersion = 1
