package validators

// Field keys used in validation results.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldLocation  = "location"
	FieldPayload   = "payload"
)

// Validation messages returned to clients.
const (
	MsgEmailInvalid       = "Email is invalid"
	MsgLocationInvalid    = "Location must be a GeoJSON Point with [longitude, latitude] coordinates"
	MsgUnsupportedPayload = "Unsupported payload"
	msgRequiredSuffix     = " field is required"
)

var fieldLabels = map[string]string{
	FieldFirstName: "First name",
	FieldLastName:  "Last name",
	FieldEmail:     "Email",
	FieldPassword:  "Password",
}

// requiredMessage renders "<Label> field is required" for a JSON field name.
func requiredMessage(field string) string {
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}
	return label + msgRequiredSuffix
}
