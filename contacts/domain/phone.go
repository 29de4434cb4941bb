package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	nationalLength         = 9
	nationalPrefix         = "9"
	nationalCountry        = "Peru"
	minInternationalLength = 10

	msgCountryNotAllowed = "country code not allowed"
	msgInvalidPhone      = "must be a 9-digit national number starting with 9, or a valid +countrycode international number"
)

// CountryCode maps a calling-code prefix to the country it belongs to.
type CountryCode struct {
	Prefix  string
	Country string
}

// CountryCodes is the fixed table of accepted international prefixes.
// Lookup walks it in order and takes the first prefix that matches.
var CountryCodes = []CountryCode{
	{Prefix: "+51", Country: "Perú"},
	{Prefix: "+52", Country: "México"},
	{Prefix: "+54", Country: "Argentina"},
	{Prefix: "+55", Country: "Brasil"},
	{Prefix: "+56", Country: "Chile"},
	{Prefix: "+57", Country: "Colombia"},
	{Prefix: "+58", Country: "Venezuela"},
	{Prefix: "+591", Country: "Bolivia"},
	{Prefix: "+593", Country: "Ecuador"},
	{Prefix: "+595", Country: "Paraguay"},
	{Prefix: "+598", Country: "Uruguay"},
}

// PhoneClass tells national numbers apart from international ones.
type PhoneClass string

const (
	PhoneInvalid       PhoneClass = "invalid"
	PhoneNational      PhoneClass = "national"
	PhoneInternational PhoneClass = "international"
)

// Classification is the result of checking a phone number.
type Classification struct {
	Valid   bool
	Class   PhoneClass
	Country string
	Message string
}

// Classify checks phone exactly as given, without stripping spaces or dashes.
func Classify(phone string) Classification {
	if isNational(phone) {
		return Classification{
			Valid:   true,
			Class:   PhoneNational,
			Country: nationalCountry,
			Message: "valid national phone number (" + nationalCountry + ")",
		}
	}

	if strings.HasPrefix(phone, "+") && utf8.RuneCountInString(phone) >= minInternationalLength {
		for _, cc := range CountryCodes {
			if strings.HasPrefix(phone, cc.Prefix) {
				return Classification{
					Valid:   true,
					Class:   PhoneInternational,
					Country: cc.Country,
					Message: "valid international phone number (" + cc.Country + ")",
				}
			}
		}
		return Classification{Class: PhoneInvalid, Message: msgCountryNotAllowed}
	}

	return Classification{Class: PhoneInvalid, Message: msgInvalidPhone}
}

// ValidatePhone returns an *InvalidPhoneError when phone does not classify as valid.
func ValidatePhone(phone string) (Classification, error) {
	c := Classify(phone)
	if !c.Valid {
		return c, &InvalidPhoneError{Phone: phone, Message: c.Message}
	}
	return c, nil
}

func isNational(phone string) bool {
	if len(phone) != nationalLength || !strings.HasPrefix(phone, nationalPrefix) {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}
