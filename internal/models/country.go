package models

// Country is one entry of the static phone reference list. DialCode keeps
// the leading "+"; MaxDigits bounds the subscriber part (input beyond it
// is truncated, never rejected).
type Country struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Flag        string `json:"flag"`
	DialCode    string `json:"dial_code"`
	MaxDigits   int    `json:"max_digits"`
	Placeholder string `json:"placeholder"`
}

// Countries is the supported country list. Brazil and Paraguay carry
// bespoke display masks; every other country passes digits through.
var Countries = []Country{
	{Code: "BR", Name: "Brasil", Flag: "🇧🇷", DialCode: "+55", MaxDigits: 11, Placeholder: "(61) 99999-9999"},
	{Code: "PY", Name: "Paraguai", Flag: "🇵🇾", DialCode: "+595", MaxDigits: 9, Placeholder: "(981) 123-456"},
	{Code: "AR", Name: "Argentina", Flag: "🇦🇷", DialCode: "+54", MaxDigits: 15, Placeholder: "11 1234-5678"},
	{Code: "UY", Name: "Uruguai", Flag: "🇺🇾", DialCode: "+598", MaxDigits: 15, Placeholder: "91 234 567"},
	{Code: "BO", Name: "Bolívia", Flag: "🇧🇴", DialCode: "+591", MaxDigits: 15, Placeholder: "71234567"},
	{Code: "CL", Name: "Chile", Flag: "🇨🇱", DialCode: "+56", MaxDigits: 15, Placeholder: "9 1234 5678"},
	{Code: "PE", Name: "Peru", Flag: "🇵🇪", DialCode: "+51", MaxDigits: 15, Placeholder: "912 345 678"},
	{Code: "CO", Name: "Colômbia", Flag: "🇨🇴", DialCode: "+57", MaxDigits: 15, Placeholder: "321 1234567"},
	{Code: "US", Name: "Estados Unidos", Flag: "🇺🇸", DialCode: "+1", MaxDigits: 15, Placeholder: "(202) 555-0123"},
	{Code: "PT", Name: "Portugal", Flag: "🇵🇹", DialCode: "+351", MaxDigits: 15, Placeholder: "912 345 678"},
	{Code: "ES", Name: "Espanha", Flag: "🇪🇸", DialCode: "+34", MaxDigits: 15, Placeholder: "612 34 56 78"},
}

// DefaultCountry returns the country preselected in the app
func DefaultCountry() Country {
	return Countries[0]
}
