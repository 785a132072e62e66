package usstates

// State pairs a postal code with its display name.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var states = []State{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
	{"FL", "Florida"}, {"GA", "Georgia"}, {"HI", "Hawaii"}, {"ID", "Idaho"},
	{"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"}, {"KS", "Kansas"},
	{"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"}, {"MD", "Maryland"},
	{"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"}, {"MS", "Mississippi"},
	{"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"}, {"NV", "Nevada"},
	{"NH", "New Hampshire"}, {"NJ", "New Jersey"}, {"NM", "New Mexico"}, {"NY", "New York"},
	{"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"}, {"OK", "Oklahoma"},
	{"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"}, {"SC", "South Carolina"},
	{"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"}, {"UT", "Utah"},
	{"VT", "Vermont"}, {"VA", "Virginia"}, {"WA", "Washington"}, {"WV", "West Virginia"},
	{"WI", "Wisconsin"}, {"WY", "Wyoming"},
	{"DC", "District of Columbia"},
	{"AS", "American Samoa"}, {"GU", "Guam"}, {"MP", "Northern Mariana Islands"},
	{"PR", "Puerto Rico"}, {"VI", "U.S. Virgin Islands"},
}

// outlying holds the codes that are not one of the 50 states.
var outlying = map[string]bool{
	"DC": true, "AS": true, "GU": true, "MP": true, "PR": true, "VI": true,
}

// IsState reports whether s is one of the 50 states rather than DC or a
// territory.
func (s State) IsState() bool { return !outlying[s.Code] }

// nameAliases are extra uppercase spellings accepted as full names.
var nameAliases = map[string]string{
	"WASHINGTON D.C.":   "DC",
	"WASHINGTON DC":     "DC",
	"VIRGIN ISLANDS":    "VI",
	"US VIRGIN ISLANDS": "VI",
	"NORTHERN MARIANAS": "MP",
}

// legacyAbbreviations maps period-free legacy abbreviations to postal codes.
var legacyAbbreviations = map[string]string{
	"ALA":   "AL",
	"ARIZ":  "AZ",
	"ARK":   "AR",
	"CAL":   "CA",
	"CALIF": "CA",
	"COL":   "CO",
	"COLO":  "CO",
	"CONN":  "CT",
	"DEL":   "DE",
	"FLA":   "FL",
	"IDA":   "ID",
	"ILL":   "IL",
	"IND":   "IN",
	"KAN":   "KS",
	"KANS":  "KS",
	"MASS":  "MA",
	"MICH":  "MI",
	"MINN":  "MN",
	"MISS":  "MS",
	"MONT":  "MT",
	"NEB":   "NE",
	"NEBR":  "NE",
	"NEV":   "NV",
	"NMEX":  "NM",
	"NDAK":  "ND",
	"SDAK":  "SD",
	"OKLA":  "OK",
	"ORE":   "OR",
	"OREG":  "OR",
	"PENN":  "PA",
	"PENNA": "PA",
	"TENN":  "TN",
	"TEX":   "TX",
	"WASH":  "WA",
	"WIS":   "WI",
	"WISC":  "WI",
	"WVA":   "WV",
	"WYO":   "WY",
}

// directionalVariants maps abbreviated directional spellings to full names.
var directionalVariants = map[string]string{
	"N CAROLINA":  "NORTH CAROLINA",
	"N. CAROLINA": "NORTH CAROLINA",
	"NO CAROLINA": "NORTH CAROLINA",
	"S CAROLINA":  "SOUTH CAROLINA",
	"S. CAROLINA": "SOUTH CAROLINA",
	"SO CAROLINA": "SOUTH CAROLINA",
	"N DAKOTA":    "NORTH DAKOTA",
	"N. DAKOTA":   "NORTH DAKOTA",
	"NO DAKOTA":   "NORTH DAKOTA",
	"S DAKOTA":    "SOUTH DAKOTA",
	"S. DAKOTA":   "SOUTH DAKOTA",
	"SO DAKOTA":   "SOUTH DAKOTA",
	"W VIRGINIA":  "WEST VIRGINIA",
	"W. VIRGINIA": "WEST VIRGINIA",
}

// dottedCodes maps legacy codes written with periods to postal codes.
var dottedCodes = map[string]string{
	"N.C.":  "NC",
	"S.C.":  "SC",
	"N.D.":  "ND",
	"S.D.":  "SD",
	"W.VA.": "WV",
	"N.H.":  "NH",
	"N.J.":  "NJ",
	"N.M.":  "NM",
	"N.Y.":  "NY",
	"R.I.":  "RI",
}
