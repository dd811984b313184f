package flags

// Country and region names X surfaces in "Account based in" and store-region
// strings, keyed lowercase. Region pseudo-entries cover App Store regions.
var countryFlags = map[string]string{
	"afghanistan":                      "🇦🇫",
	"albania":                          "🇦🇱",
	"algeria":                          "🇩🇿",
	"andorra":                          "🇦🇩",
	"angola":                           "🇦🇴",
	"antigua and barbuda":              "🇦🇬",
	"argentina":                        "🇦🇷",
	"armenia":                          "🇦🇲",
	"australia":                        "🇦🇺",
	"austria":                          "🇦🇹",
	"azerbaijan":                       "🇦🇿",
	"bahamas":                          "🇧🇸",
	"bahrain":                          "🇧🇭",
	"bangladesh":                       "🇧🇩",
	"barbados":                         "🇧🇧",
	"belarus":                          "🇧🇾",
	"belgium":                          "🇧🇪",
	"belize":                           "🇧🇿",
	"benin":                            "🇧🇯",
	"bhutan":                           "🇧🇹",
	"bolivia":                          "🇧🇴",
	"bosnia and herzegovina":           "🇧🇦",
	"bosnia":                           "🇧🇦",
	"botswana":                         "🇧🇼",
	"brazil":                           "🇧🇷",
	"brasil":                           "🇧🇷",
	"brunei":                           "🇧🇳",
	"bulgaria":                         "🇧🇬",
	"burkina faso":                     "🇧🇫",
	"burundi":                          "🇧🇮",
	"cambodia":                         "🇰🇭",
	"cameroon":                         "🇨🇲",
	"canada":                           "🇨🇦",
	"cape verde":                       "🇨🇻",
	"central african republic":         "🇨🇫",
	"chad":                             "🇹🇩",
	"chile":                            "🇨🇱",
	"china":                            "🇨🇳",
	"colombia":                         "🇨🇴",
	"comoros":                          "🇰🇲",
	"congo":                            "🇨🇬",
	"costa rica":                       "🇨🇷",
	"croatia":                          "🇭🇷",
	"cuba":                             "🇨🇺",
	"cyprus":                           "🇨🇾",
	"czech republic":                   "🇨🇿",
	"czechia":                          "🇨🇿",
	"denmark":                          "🇩🇰",
	"djibouti":                         "🇩🇯",
	"dominica":                         "🇩🇲",
	"dominican republic":               "🇩🇴",
	"ecuador":                          "🇪🇨",
	"egypt":                            "🇪🇬",
	"el salvador":                      "🇸🇻",
	"equatorial guinea":                "🇬🇶",
	"eritrea":                          "🇪🇷",
	"estonia":                          "🇪🇪",
	"eswatini":                         "🇸🇿",
	"ethiopia":                         "🇪🇹",
	"fiji":                             "🇫🇯",
	"finland":                          "🇫🇮",
	"france":                           "🇫🇷",
	"gabon":                            "🇬🇦",
	"gambia":                           "🇬🇲",
	"georgia":                          "🇬🇪",
	"germany":                          "🇩🇪",
	"ghana":                            "🇬🇭",
	"greece":                           "🇬🇷",
	"grenada":                          "🇬🇩",
	"guatemala":                        "🇬🇹",
	"guinea":                           "🇬🇳",
	"guinea-bissau":                    "🇬🇼",
	"guyana":                           "🇬🇾",
	"haiti":                            "🇭🇹",
	"honduras":                         "🇭🇳",
	"hong kong":                        "🇭🇰",
	"hungary":                          "🇭🇺",
	"iceland":                          "🇮🇸",
	"india":                            "🇮🇳",
	"indonesia":                        "🇮🇩",
	"iran":                             "🇮🇷",
	"iraq":                             "🇮🇶",
	"ireland":                          "🇮🇪",
	"israel":                           "🇮🇱",
	"italy":                            "🇮🇹",
	"ivory coast":                      "🇨🇮",
	"jamaica":                          "🇯🇲",
	"japan":                            "🇯🇵",
	"jordan":                           "🇯🇴",
	"kazakhstan":                       "🇰🇿",
	"kenya":                            "🇰🇪",
	"kiribati":                         "🇰🇮",
	"korea":                            "🇰🇷",
	"south korea":                      "🇰🇷",
	"north korea":                      "🇰🇵",
	"kuwait":                           "🇰🇼",
	"kyrgyzstan":                       "🇰🇬",
	"laos":                             "🇱🇦",
	"latvia":                           "🇱🇻",
	"lebanon":                          "🇱🇧",
	"lesotho":                          "🇱🇸",
	"liberia":                          "🇱🇷",
	"libya":                            "🇱🇾",
	"liechtenstein":                    "🇱🇮",
	"lithuania":                        "🇱🇹",
	"luxembourg":                       "🇱🇺",
	"macau":                            "🇲🇴",
	"madagascar":                       "🇲🇬",
	"malawi":                           "🇲🇼",
	"malaysia":                         "🇲🇾",
	"maldives":                         "🇲🇻",
	"mali":                             "🇲🇱",
	"malta":                            "🇲🇹",
	"marshall islands":                 "🇲🇭",
	"mauritania":                       "🇲🇷",
	"mauritius":                        "🇲🇺",
	"mexico":                           "🇲🇽",
	"micronesia":                       "🇫🇲",
	"moldova":                          "🇲🇩",
	"monaco":                           "🇲🇨",
	"mongolia":                         "🇲🇳",
	"montenegro":                       "🇲🇪",
	"morocco":                          "🇲🇦",
	"mozambique":                       "🇲🇿",
	"myanmar":                          "🇲🇲",
	"burma":                            "🇲🇲",
	"namibia":                          "🇳🇦",
	"nauru":                            "🇳🇷",
	"nepal":                            "🇳🇵",
	"netherlands":                      "🇳🇱",
	"holland":                          "🇳🇱",
	"new zealand":                      "🇳🇿",
	"nicaragua":                        "🇳🇮",
	"niger":                            "🇳🇪",
	"nigeria":                          "🇳🇬",
	"north macedonia":                  "🇲🇰",
	"macedonia":                        "🇲🇰",
	"norway":                           "🇳🇴",
	"oman":                             "🇴🇲",
	"pakistan":                         "🇵🇰",
	"palau":                            "🇵🇼",
	"palestine":                        "🇵🇸",
	"panama":                           "🇵🇦",
	"papua new guinea":                 "🇵🇬",
	"paraguay":                         "🇵🇾",
	"peru":                             "🇵🇪",
	"philippines":                      "🇵🇭",
	"poland":                           "🇵🇱",
	"portugal":                         "🇵🇹",
	"puerto rico":                      "🇵🇷",
	"qatar":                            "🇶🇦",
	"romania":                          "🇷🇴",
	"russia":                           "🇷🇺",
	"russian federation":               "🇷🇺",
	"rwanda":                           "🇷🇼",
	"saint kitts and nevis":            "🇰🇳",
	"saint lucia":                      "🇱🇨",
	"saint vincent and the grenadines": "🇻🇨",
	"samoa":                            "🇼🇸",
	"san marino":                       "🇸🇲",
	"sao tome and principe":            "🇸🇹",
	"saudi arabia":                     "🇸🇦",
	"senegal":                          "🇸🇳",
	"serbia":                           "🇷🇸",
	"seychelles":                       "🇸🇨",
	"sierra leone":                     "🇸🇱",
	"singapore":                        "🇸🇬",
	"slovakia":                         "🇸🇰",
	"slovenia":                         "🇸🇮",
	"solomon islands":                  "🇸🇧",
	"somalia":                          "🇸🇴",
	"south africa":                     "🇿🇦",
	"south sudan":                      "🇸🇸",
	"spain":                            "🇪🇸",
	"sri lanka":                        "🇱🇰",
	"sudan":                            "🇸🇩",
	"suriname":                         "🇸🇷",
	"sweden":                           "🇸🇪",
	"switzerland":                      "🇨🇭",
	"syria":                            "🇸🇾",
	"taiwan":                           "🇹🇼",
	"tajikistan":                       "🇹🇯",
	"tanzania":                         "🇹🇿",
	"thailand":                         "🇹🇭",
	"timor-leste":                      "🇹🇱",
	"east timor":                       "🇹🇱",
	"togo":                             "🇹🇬",
	"tonga":                            "🇹🇴",
	"trinidad and tobago":              "🇹🇹",
	"tunisia":                          "🇹🇳",
	"turkey":                           "🇹🇷",
	"turkmenistan":                     "🇹🇲",
	"tuvalu":                           "🇹🇻",
	"uganda":                           "🇺🇬",
	"ukraine":                          "🇺🇦",
	"united arab emirates":             "🇦🇪",
	"uae":                              "🇦🇪",
	"united kingdom":                   "🇬🇧",
	"uk":                               "🇬🇧",
	"great britain":                    "🇬🇧",
	"britain":                          "🇬🇧",
	"england":                          "🏴󠁧󠁢󠁥󠁮󠁧󠁿",
	"scotland":                         "🏴󠁧󠁢󠁳󠁣󠁴󠁿",
	"wales":                            "🏴󠁧󠁢󠁷󠁬󠁳󠁿",
	"united states":                    "🇺🇸",
	"usa":                              "🇺🇸",
	"us":                               "🇺🇸",
	"america":                          "🇺🇸",
	"uruguay":                          "🇺🇾",
	"uzbekistan":                       "🇺🇿",
	"vanuatu":                          "🇻🇺",
	"vatican":                          "🇻🇦",
	"vatican city":                     "🇻🇦",
	"venezuela":                        "🇻🇪",
	"vietnam":                          "🇻🇳",
	"viet nam":                         "🇻🇳",
	"yemen":                            "🇾🇪",
	"zambia":                           "🇿🇲",
	"zimbabwe":                         "🇿🇼",
	"europe":                           "🇪🇺",
	"european union":                   "🇪🇺",
	"eu":                               "🇪🇺",
	"south asia":                       "🇮🇳🇵🇰🇧🇩",
	"southeast asia":                   "🌏",
	"east asia":                        "🌏",
	"asia":                             "🌏",
	"asia pacific":                     "🌏",
	"apac":                             "🌏",
	"middle east":                      "🌍",
	"mena":                             "🌍",
	"africa":                           "🌍",
	"sub-saharan africa":               "🌍",
	"north america":                    "🇺🇸🇨🇦",
	"south america":                    "🇧🇷🇦🇷🇨🇴",
	"latin america":                    "🌎",
	"latam":                            "🌎",
	"americas":                         "🌎",
	"oceania":                          "🌏",
	"pacific":                          "🌏",
	"worldwide":                        "🌐",
	"global":                           "🌐",
}

// ISO 3166-1 alpha-2 codes.
var countryCodes = map[string]string{
	"AF": "🇦🇫", "AL": "🇦🇱", "DZ": "🇩🇿", "AD": "🇦🇩",
	"AO": "🇦🇴", "AG": "🇦🇬", "AR": "🇦🇷", "AM": "🇦🇲",
	"AU": "🇦🇺", "AT": "🇦🇹", "AZ": "🇦🇿", "BS": "🇧🇸",
	"BH": "🇧🇭", "BD": "🇧🇩", "BB": "🇧🇧", "BY": "🇧🇾",
	"BE": "🇧🇪", "BZ": "🇧🇿", "BJ": "🇧🇯", "BT": "🇧🇹",
	"BO": "🇧🇴", "BA": "🇧🇦", "BW": "🇧🇼", "BR": "🇧🇷",
	"BN": "🇧🇳", "BG": "🇧🇬", "BF": "🇧🇫", "BI": "🇧🇮",
	"KH": "🇰🇭", "CM": "🇨🇲", "CA": "🇨🇦", "CV": "🇨🇻",
	"CF": "🇨🇫", "TD": "🇹🇩", "CL": "🇨🇱", "CN": "🇨🇳",
	"CO": "🇨🇴", "KM": "🇰🇲", "CG": "🇨🇬", "CR": "🇨🇷",
	"HR": "🇭🇷", "CU": "🇨🇺", "CY": "🇨🇾", "CZ": "🇨🇿",
	"DK": "🇩🇰", "DJ": "🇩🇯", "DM": "🇩🇲", "DO": "🇩🇴",
	"EC": "🇪🇨", "EG": "🇪🇬", "SV": "🇸🇻", "GQ": "🇬🇶",
	"ER": "🇪🇷", "EE": "🇪🇪", "SZ": "🇸🇿", "ET": "🇪🇹",
	"FJ": "🇫🇯", "FI": "🇫🇮", "FR": "🇫🇷", "GA": "🇬🇦",
	"GM": "🇬🇲", "GE": "🇬🇪", "DE": "🇩🇪", "GH": "🇬🇭",
	"GR": "🇬🇷", "GD": "🇬🇩", "GT": "🇬🇹", "GN": "🇬🇳",
	"GW": "🇬🇼", "GY": "🇬🇾", "HT": "🇭🇹", "HN": "🇭🇳",
	"HK": "🇭🇰", "HU": "🇭🇺", "IS": "🇮🇸", "IN": "🇮🇳",
	"ID": "🇮🇩", "IR": "🇮🇷", "IQ": "🇮🇶", "IE": "🇮🇪",
	"IL": "🇮🇱", "IT": "🇮🇹", "CI": "🇨🇮", "JM": "🇯🇲",
	"JP": "🇯🇵", "JO": "🇯🇴", "KZ": "🇰🇿", "KE": "🇰🇪",
	"KI": "🇰🇮", "KR": "🇰🇷", "KP": "🇰🇵", "KW": "🇰🇼",
	"KG": "🇰🇬", "LA": "🇱🇦", "LV": "🇱🇻", "LB": "🇱🇧",
	"LS": "🇱🇸", "LR": "🇱🇷", "LY": "🇱🇾", "LI": "🇱🇮",
	"LT": "🇱🇹", "LU": "🇱🇺", "MO": "🇲🇴", "MG": "🇲🇬",
	"MW": "🇲🇼", "MY": "🇲🇾", "MV": "🇲🇻", "ML": "🇲🇱",
	"MT": "🇲🇹", "MH": "🇲🇭", "MR": "🇲🇷", "MU": "🇲🇺",
	"MX": "🇲🇽", "FM": "🇫🇲", "MD": "🇲🇩", "MC": "🇲🇨",
	"MN": "🇲🇳", "ME": "🇲🇪", "MA": "🇲🇦", "MZ": "🇲🇿",
	"MM": "🇲🇲", "NA": "🇳🇦", "NR": "🇳🇷", "NP": "🇳🇵",
	"NL": "🇳🇱", "NZ": "🇳🇿", "NI": "🇳🇮", "NE": "🇳🇪",
	"NG": "🇳🇬", "MK": "🇲🇰", "NO": "🇳🇴", "OM": "🇴🇲",
	"PK": "🇵🇰", "PW": "🇵🇼", "PS": "🇵🇸", "PA": "🇵🇦",
	"PG": "🇵🇬", "PY": "🇵🇾", "PE": "🇵🇪", "PH": "🇵🇭",
	"PL": "🇵🇱", "PT": "🇵🇹", "PR": "🇵🇷", "QA": "🇶🇦",
	"RO": "🇷🇴", "RU": "🇷🇺", "RW": "🇷🇼", "KN": "🇰🇳",
	"LC": "🇱🇨", "VC": "🇻🇨", "WS": "🇼🇸", "SM": "🇸🇲",
	"ST": "🇸🇹", "SA": "🇸🇦", "SN": "🇸🇳", "RS": "🇷🇸",
	"SC": "🇸🇨", "SL": "🇸🇱", "SG": "🇸🇬", "SK": "🇸🇰",
	"SI": "🇸🇮", "SB": "🇸🇧", "SO": "🇸🇴", "ZA": "🇿🇦",
	"SS": "🇸🇸", "ES": "🇪🇸", "LK": "🇱🇰", "SD": "🇸🇩",
	"SR": "🇸🇷", "SE": "🇸🇪", "CH": "🇨🇭", "SY": "🇸🇾",
	"TW": "🇹🇼", "TJ": "🇹🇯", "TZ": "🇹🇿", "TH": "🇹🇭",
	"TL": "🇹🇱", "TG": "🇹🇬", "TO": "🇹🇴", "TT": "🇹🇹",
	"TN": "🇹🇳", "TR": "🇹🇷", "TM": "🇹🇲", "TV": "🇹🇻",
	"UG": "🇺🇬", "UA": "🇺🇦", "AE": "🇦🇪", "GB": "🇬🇧",
	"US": "🇺🇸", "UY": "🇺🇾", "UZ": "🇺🇿", "VU": "🇻🇺",
	"VA": "🇻🇦", "VE": "🇻🇪", "VN": "🇻🇳", "YE": "🇾🇪",
	"ZM": "🇿🇲", "ZW": "🇿🇼",
}
