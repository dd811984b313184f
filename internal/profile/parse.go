package profile

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"
)

// The upstream created_at format is "Tue Mar 15 00:00:00 +0000 2022":
// the year is the trailing 4-digit token, the month the token after the
// weekday. Regex extraction tolerates the surrounding fields drifting.
var (
	reCreatedYear  = regexp.MustCompile(`(\d{4})$`)
	reCreatedMonth = regexp.MustCompile(`^[A-Za-z]{3} ([A-Za-z]{3})`)
)

type legacyPayload struct {
	CreatedAt string `json:"created_at"`
	Name      string `json:"name"`
	Protected bool   `json:"protected"`
	Verified  bool   `json:"verified"`
}

type userLookupPayload struct {
	Data struct {
		User struct {
			Result *struct {
				TypeName       string         `json:"__typename"`
				Legacy         *legacyPayload `json:"legacy"`
				IsBlueVerified bool           `json:"is_blue_verified"`
			} `json:"result"`
		} `json:"user"`
	} `json:"data"`
}

type aboutAccountPayload struct {
	Data struct {
		UserResultByScreenName struct {
			Result *struct {
				TypeName     string `json:"__typename"`
				AboutProfile *struct {
					AccountBasedIn   string `json:"account_based_in"`
					Source           string `json:"source"`
					LocationAccurate *bool  `json:"location_accurate"`
				} `json:"about_profile"`
				Legacy         *legacyPayload `json:"legacy"`
				IsBlueVerified bool           `json:"is_blue_verified"`
			} `json:"result"`
		} `json:"user_result_by_screen_name"`
	} `json:"data"`
}

// ParseUserLookup parses a UserByScreenName response. Returns nil when the
// payload carries no user result or cannot be decoded; a suspended or
// otherwise unavailable account yields a record with only IsSuspended set.
func ParseUserLookup(raw []byte, username string) *Record {
	var payload userLookupPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		logrus.WithField("component", "parser").WithError(err).Debug("user lookup payload not decodable")
		return nil
	}

	result := payload.Data.User.Result
	if result == nil {
		return nil
	}

	rec := &Record{Username: NormalizeUsername(username)}
	if result.TypeName == "UserUnavailable" {
		rec.IsSuspended = true
		return rec
	}
	if result.Legacy == nil {
		return nil
	}

	applyLegacy(rec, result.Legacy)
	if result.IsBlueVerified {
		rec.IsVerified = true
	}
	return rec
}

// ParseAboutAccount parses an AboutAccountQuery response: the about_profile
// block carries the declared location, the connected-via source string and
// the location-accuracy flag; join date, name and verification fall back to
// the legacy block when about_profile lacks them.
func ParseAboutAccount(raw []byte, username string) *Record {
	var payload aboutAccountPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		logrus.WithField("component", "parser").WithError(err).Debug("about account payload not decodable")
		return nil
	}

	result := payload.Data.UserResultByScreenName.Result
	if result == nil {
		return nil
	}

	rec := &Record{Username: NormalizeUsername(username)}
	if result.TypeName == "UserUnavailable" {
		rec.IsSuspended = true
		return rec
	}

	if about := result.AboutProfile; about != nil {
		if about.AccountBasedIn != "" {
			rec.BasedIn = &Place{Country: about.AccountBasedIn, Raw: about.AccountBasedIn}
		}
		if about.Source != "" {
			rec.ConnectedVia = &Place{Country: ExtractRegion(about.Source), Raw: about.Source}
		}
		if about.LocationAccurate != nil && !*about.LocationAccurate {
			rec.HasVpnWarning = true
		}
	}

	if result.Legacy != nil {
		applyLegacy(rec, result.Legacy)
	}
	if result.IsBlueVerified {
		rec.IsVerified = true
	}
	return rec
}

func applyLegacy(rec *Record, legacy *legacyPayload) {
	if rec.JoinedYear == 0 && legacy.CreatedAt != "" {
		if m := reCreatedYear.FindStringSubmatch(legacy.CreatedAt); m != nil {
			rec.JoinedYear, _ = strconv.Atoi(m[1])
		}
		if m := reCreatedMonth.FindStringSubmatch(legacy.CreatedAt); m != nil {
			rec.JoinedMonth = m[1]
		}
	}
	if legacy.Name != "" {
		rec.DisplayName = legacy.Name
	}
	if legacy.Protected {
		rec.IsProtected = true
	}
	if legacy.Verified {
		rec.IsVerified = true
	}
}
