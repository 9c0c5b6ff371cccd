package rules

import "github.com/poiesic/worklens/core"

// DefaultJurisdiction is used when a query does not name one.
const DefaultJurisdiction = "US"

// DefaultJurisdictions returns the built-in jurisdiction duration table.
// Durations reflect the law as of 2024; PublicDomainBefore is the
// publication-year cutoff where one applies.
func DefaultJurisdictions() []*core.JurisdictionRule {
	return []*core.JurisdictionRule{
		{
			Code:               "US",
			Name:               "United States",
			StandardDuration:   70,
			CorporateDuration:  95,
			AnonymousDuration:  95,
			PublicDomainBefore: 1929,
			Notes:              "Copyright term varies based on publication date and registration status",
		},
		{
			Code:              "EU",
			Name:              "European Union",
			StandardDuration:  70,
			CorporateDuration: 70,
			AnonymousDuration: 70,
			Notes:             "Harmonized across EU member states",
		},
		{
			Code:              "UK",
			Name:              "United Kingdom",
			StandardDuration:  70,
			CorporateDuration: 70,
			AnonymousDuration: 70,
			Notes:             "Similar to EU rules, post-Brexit maintains same durations",
		},
		{
			Code:              "CA",
			Name:              "Canada",
			StandardDuration:  70,
			CorporateDuration: 75,
			AnonymousDuration: 75,
			Notes:             "Extended to 70 years as of December 2022",
		},
		{
			Code:              "AU",
			Name:              "Australia",
			StandardDuration:  70,
			CorporateDuration: 70,
			AnonymousDuration: 70,
			Notes:             "70 years since 2005",
		},
		{
			Code:              "JP",
			Name:              "Japan",
			StandardDuration:  70,
			CorporateDuration: 70,
			AnonymousDuration: 70,
			Notes:             "Extended to 70 years in 2018",
		},
		{
			Code:              "IN",
			Name:              "India",
			StandardDuration:  60,
			CorporateDuration: 60,
			AnonymousDuration: 60,
			Notes:             "60 years after author death",
		},
	}
}
