package category

// builtin holds the stock category for each label the directory is known to produce.
// Some keys carry historical quirks (e.g. a doubled quality suffix) and are
// kept verbatim; labels that do not match exactly fall back to Fallback.
var builtin = map[string]string{
	// Sports
	"ACC Network SD":        "Sports",
	"ACC Network HD":        "Sports",
	"Big Ten Network SD":    "Sports",
	"Big Ten Network HD":    "Sports",
	"CBS Sports Network SD": "Sports",
	"CBS Sports Network HD": "Sports",
	"ESPN SD":               "Sports",
	"ESPN HD":               "Sports",
	"ESPN2 SD":              "Sports",
	"ESPN2 HD":              "Sports",
	"ESPNews SD":            "Sports",
	"ESPNews HD":            "Sports",
	"ESPNU SD":              "Sports",
	"ESPNU HD":              "Sports",
	"Fox Sports 1 SD":       "Sports",
	"Fox Sports 1 HD":       "Sports",
	"Fox Sports 2 SD":       "Sports",
	"Fox Sports 2 HD":       "Sports",
	"Golf Channel SD":       "Sports",
	"Golf Channel HD":       "Sports",
	"MLB Network SD":        "Sports",
	"MLB Network HD":        "Sports",
	"NBA TV SD":             "Sports",
	"NBA TV HD":             "Sports",
	"NFL Network SD":        "Sports",
	"NFL Network HD":        "Sports",
	"NFL RedZone SD":        "Sports",
	"NFL RedZone HD":        "Sports",
	"NHL Network SD":        "Sports",
	"NHL Network HD":        "Sports",
	"SEC Network SD":        "Sports",
	"SEC Network HD":        "Sports",
	"Tennis Channel SD":     "Sports",
	"Tennis Channel HD":     "Sports",
	"TNT SD":                "Sports",
	"TNT HD":                "Sports",
	"TBS SD":                "Sports",
	"TBS HD":                "Sports",
	"beIN Sports SD":        "Sports",
	"beIN Sports HD":        "Sports",
	"Fox Soccer Plus SD":    "Sports",
	"Fox Soccer Plus HD":    "Sports",
	"Willow Cricket SD":     "Sports",
	"Willow Cricket HD":     "Sports",
	// News
	"ABC News Live SD":        "News",
	"ABC News Live HD":        "News",
	"BBC World News HD SD":    "News",
	"BBC World News HD HD":    "News",
	"Bloomberg TV SD":         "News",
	"Bloomberg TV HD":         "News",
	"CNBC SD":                 "News",
	"CNBC HD":                 "News",
	"CNN SD":                  "News",
	"CNN HD":                  "News",
	"CNN International SD":    "News",
	"CNN International HD":    "News",
	"C-SPAN SD":               "News",
	"C-SPAN HD":               "News",
	"Fox Business Network SD": "News",
	"Fox Business Network HD": "News",
	"Fox News Channel SD":     "News",
	"Fox News Channel HD":     "News",
	"HLN SD":                  "News",
	"HLN HD":                  "News",
	"MSNBC SD":                "News",
	"MSNBC HD":                "News",
	"NewsNation SD":           "News",
	"NewsNation HD":           "News",
	"Weather Channel SD":      "News",
	"Weather Channel HD":      "News",
	// Entertainment
	"A&E SD":               "Entertainment",
	"A&E HD":               "Entertainment",
	"AMC SD":               "Entertainment",
	"AMC HD":               "Entertainment",
	"BBC America SD":       "Entertainment",
	"BBC America HD":       "Entertainment",
	"Bravo SD":             "Entertainment",
	"Bravo HD":             "Entertainment",
	"Comedy Central SD":    "Entertainment",
	"Comedy Central HD":    "Entertainment",
	"E! SD":                "Entertainment",
	"E! HD":                "Entertainment",
	"Freeform SD":          "Entertainment",
	"Freeform HD":          "Entertainment",
	"FX SD":                "Entertainment",
	"FX HD":                "Entertainment",
	"FXX SD":               "Entertainment",
	"FXX HD":               "Entertainment",
	"FYI SD":               "Entertainment",
	"FYI HD":               "Entertainment",
	"Hallmark Channel SD":  "Entertainment",
	"Hallmark Channel HD":  "Entertainment",
	"IFC SD":               "Entertainment",
	"IFC HD":               "Entertainment",
	"Lifetime SD":          "Entertainment",
	"Lifetime HD":          "Entertainment",
	"Oxygen SD":            "Entertainment",
	"Oxygen HD":            "Entertainment",
	"Paramount Network SD": "Entertainment",
	"Paramount Network HD": "Entertainment",
	"Syfy SD":              "Entertainment",
	"Syfy HD":              "Entertainment",
	"TLC SD":               "Entertainment",
	"TLC HD":               "Entertainment",
	"TV Land SD":           "Entertainment",
	"TV Land HD":           "Entertainment",
	"USA Network SD":       "Entertainment",
	"USA Network HD":       "Entertainment",
	"VH1 SD":               "Entertainment",
	"VH1 HD":               "Entertainment",
	"WE tv SD":             "Entertainment",
	"WE tv HD":             "Entertainment",
	// Kids
	"Boomerang SD":       "Kids",
	"Boomerang HD":       "Kids",
	"Cartoon Network SD": "Kids",
	"Cartoon Network HD": "Kids",
	"Disney Channel SD":  "Kids",
	"Disney Channel HD":  "Kids",
	"Disney Junior SD":   "Kids",
	"Disney Junior HD":   "Kids",
	"Disney XD SD":       "Kids",
	"Disney XD HD":       "Kids",
	"Nickelodeon SD":     "Kids",
	"Nickelodeon HD":     "Kids",
	"Nick Jr. SD":        "Kids",
	"Nick Jr. HD":        "Kids",
	"Nicktoons SD":       "Kids",
	"Nicktoons HD":       "Kids",
	"TeenNick SD":        "Kids",
	"TeenNick HD":        "Kids",
	"Universal Kids SD":  "Kids",
	"Universal Kids HD":  "Kids",
	// Documentary
	"Animal Planet SD":           "Documentary",
	"Animal Planet HD":           "Documentary",
	"Discovery Channel SD":       "Documentary",
	"Discovery Channel HD":       "Documentary",
	"History SD":                 "Documentary",
	"History HD":                 "Documentary",
	"National Geographic SD":     "Documentary",
	"National Geographic HD":     "Documentary",
	"Nat Geo Wild SD":            "Documentary",
	"Nat Geo Wild HD":            "Documentary",
	"Science Channel SD":         "Documentary",
	"Science Channel HD":         "Documentary",
	"Smithsonian Channel SD":     "Documentary",
	"Smithsonian Channel HD":     "Documentary",
	"Investigation Discovery SD": "Documentary",
	"Investigation Discovery HD": "Documentary",
	"Travel Channel SD":          "Documentary",
	"Travel Channel HD":          "Documentary",
	// Movies
	"Cinemax SD":               "Movies",
	"Cinemax HD":               "Movies",
	"HBO SD":                   "Movies",
	"HBO HD":                   "Movies",
	"HBO 2 SD":                 "Movies",
	"HBO 2 HD":                 "Movies",
	"HBO Comedy SD":            "Movies",
	"HBO Comedy HD":            "Movies",
	"HBO Family SD":            "Movies",
	"HBO Family HD":            "Movies",
	"HBO Signature SD":         "Movies",
	"HBO Signature HD":         "Movies",
	"Showtime SD":              "Movies",
	"Showtime HD":              "Movies",
	"Showtime 2 SD":            "Movies",
	"Showtime 2 HD":            "Movies",
	"Starz SD":                 "Movies",
	"Starz HD":                 "Movies",
	"Starz Encore SD":          "Movies",
	"Starz Encore HD":          "Movies",
	"MGM+ SD":                  "Movies",
	"MGM+ HD":                  "Movies",
	"Turner Classic Movies SD": "Movies",
	"Turner Classic Movies HD": "Movies",
	"Sony Movie Channel SD":    "Movies",
	"Sony Movie Channel HD":    "Movies",
	// Lifestyle
	"Cooking Channel SD":  "Lifestyle",
	"Cooking Channel HD":  "Lifestyle",
	"Food Network SD":     "Lifestyle",
	"Food Network HD":     "Lifestyle",
	"HGTV SD":             "Lifestyle",
	"HGTV HD":             "Lifestyle",
	"Magnolia Network SD": "Lifestyle",
	"Magnolia Network HD": "Lifestyle",
	"OWN SD":              "Lifestyle",
	"OWN HD":              "Lifestyle",
	// Music
	"BET SD":  "Music",
	"BET HD":  "Music",
	"CMT SD":  "Music",
	"CMT HD":  "Music",
	"MTV SD":  "Music",
	"MTV HD":  "Music",
	"MTV2 SD": "Music",
	"MTV2 HD": "Music",
}

// DefaultTable returns the built-in category table.
func DefaultTable() Table {
	return NewTable(builtin)
}
