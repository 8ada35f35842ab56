package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`

	// CPF as raw digits after the mask is stripped.
	RegexCPFDigits = `^\d{11}$`
	// Brazilian phone as raw digits: area code + 8 or 9 digit number.
	RegexBrazilPhoneDigits = `^\d{10,11}$`
	// CRM: council registration number, optionally suffixed with /UF.
	RegexCRM = `^\d{4,10}(/[A-Z]{2})?$`
)
