package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService  = "service"
	FieldVersion  = "version"
	FieldSeason   = "season"
	FieldYear     = "year"
	FieldTeam     = "team"
	FieldEndpoint = "endpoint"
	FieldURL      = "url"
	FieldPage     = "page"
	FieldPath     = "path"
	FieldCount    = "count"
	FieldCalendar = "calendar"
)
