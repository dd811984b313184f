package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userLookupFixture = `{
  "data": {
    "user": {
      "result": {
        "__typename": "User",
        "is_blue_verified": true,
        "legacy": {
          "created_at": "Tue Mar 15 00:00:00 +0000 2022",
          "name": "Alice Example",
          "protected": true,
          "verified": false
        }
      }
    }
  }
}`

const aboutAccountFixture = `{
  "data": {
    "user_result_by_screen_name": {
      "result": {
        "__typename": "User",
        "is_blue_verified": false,
        "about_profile": {
          "account_based_in": "Japan",
          "source": "Europe Android App",
          "location_accurate": false
        },
        "legacy": {
          "created_at": "Wed Jun 01 12:30:00 +0000 2011",
          "name": "Bob Example",
          "protected": false,
          "verified": true
        }
      }
    }
  }
}`

const suspendedFixture = `{
  "data": {
    "user": {
      "result": {
        "__typename": "UserUnavailable"
      }
    }
  }
}`

func TestParseUserLookup(t *testing.T) {
	rec := ParseUserLookup([]byte(userLookupFixture), "Alice")
	require.NotNil(t, rec)

	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, 2022, rec.JoinedYear)
	assert.Equal(t, "Mar", rec.JoinedMonth)
	assert.Equal(t, "Alice Example", rec.DisplayName)
	assert.True(t, rec.IsProtected)
	assert.True(t, rec.IsVerified, "is_blue_verified should be folded into IsVerified")
	assert.False(t, rec.IsSuspended)
}

func TestParseUserLookupUnavailable(t *testing.T) {
	rec := ParseUserLookup([]byte(suspendedFixture), "gone")
	require.NotNil(t, rec)
	assert.True(t, rec.IsSuspended)
	assert.Zero(t, rec.JoinedYear)
	assert.Nil(t, rec.BasedIn)
}

func TestParseUserLookupMalformed(t *testing.T) {
	assert.Nil(t, ParseUserLookup([]byte(`not json`), "x"))
	assert.Nil(t, ParseUserLookup([]byte(`{}`), "x"))
	assert.Nil(t, ParseUserLookup([]byte(`{"data":{"user":{}}}`), "x"))
}

func TestParseAboutAccount(t *testing.T) {
	rec := ParseAboutAccount([]byte(aboutAccountFixture), "Bob")
	require.NotNil(t, rec)

	require.NotNil(t, rec.BasedIn)
	assert.Equal(t, "Japan", rec.BasedIn.Country)
	assert.Equal(t, "Japan", rec.BasedIn.Raw)

	require.NotNil(t, rec.ConnectedVia)
	assert.Equal(t, "Europe", rec.ConnectedVia.Country)
	assert.Equal(t, "Europe Android App", rec.ConnectedVia.Raw)

	assert.True(t, rec.HasVpnWarning, "location_accurate=false should set the warning")
	assert.Equal(t, 2011, rec.JoinedYear)
	assert.Equal(t, "Jun", rec.JoinedMonth)
	assert.Equal(t, "Bob Example", rec.DisplayName)
	assert.True(t, rec.IsVerified)
}

func TestParseAboutAccountAccurateLocation(t *testing.T) {
	fixture := `{"data":{"user_result_by_screen_name":{"result":{
		"__typename":"User",
		"about_profile":{"account_based_in":"Singapore","source":"Singapore","location_accurate":true}
	}}}}`
	rec := ParseAboutAccount([]byte(fixture), "carol")
	require.NotNil(t, rec)
	assert.False(t, rec.HasVpnWarning)
	require.NotNil(t, rec.ConnectedVia)
	assert.Equal(t, "Singapore", rec.ConnectedVia.Country, "no trailing marker means the whole string is the region")
}

func TestParseAboutAccountUnavailable(t *testing.T) {
	fixture := `{"data":{"user_result_by_screen_name":{"result":{"__typename":"UserUnavailable"}}}}`
	rec := ParseAboutAccount([]byte(fixture), "gone")
	require.NotNil(t, rec)
	assert.True(t, rec.IsSuspended)
	assert.Nil(t, rec.BasedIn)
}

func TestParseAboutAccountMissingResult(t *testing.T) {
	assert.Nil(t, ParseAboutAccount([]byte(`{"data":{}}`), "x"))
	assert.Nil(t, ParseAboutAccount([]byte(`broken`), "x"))
}
