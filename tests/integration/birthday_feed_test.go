package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dhruvp2403/samajportal/tests/integration/setup"
	"github.com/stretchr/testify/require"
)

// TestBirthdayFeeds registers members around today's date and checks that
// only approved members show up in the birthday endpoints.
func TestBirthdayFeeds(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	infra, err := setup.StartInfra(ctx, t)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = infra.Terminate(ctx, t)
	})

	err = setup.RunMigration(infra.PgURL, t)
	require.NoError(t, err)

	app, db, _, _ := setup.SetupTestApp(t, infra.PgURL, infra.RedisURL, infra.MinioURL)

	t.Cleanup(func() {
		setup.TruncateAllTables(t, db, ctx)
	})

	_, username, password := setup.SeedAdmin(t, db, ctx)

	loginBody := []byte(fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	resp, err := app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/auth/login", loginBody))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	token := setup.GetAccessTokenFromResponse(t, resp)

	now := time.Now().UTC()
	todayDOB := time.Date(1990, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	inThreeDays := now.AddDate(0, 0, 3)
	upcomingDOB := time.Date(1988, inThreeDays.Month(), inThreeDays.Day(), 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	register := func(name, mobile, dob string) string {
		body := []byte(fmt.Sprintf(`{"fullName":%q,"fatherName":"Test Father","gender":"male","mobile":%q,"dateOfBirth":%q}`, name, mobile, dob))
		resp, err := app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/members/register", body))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
		return setup.ParseJSONResponse(t, resp)["id"].(string)
	}

	approve := func(memberId string) {
		resp, err := app.Test(setup.CreateAuthRequest(http.MethodPatch, "/api/admin/members/"+memberId+"/status", []byte(`{"status":"approved"}`), token))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	}

	todayApproved := register("Birthday Approved", "9800000001", todayDOB)
	approve(todayApproved)

	// Same birthday but still pending, must not appear
	register("Birthday Pending", "9800000002", todayDOB)

	upcomingApproved := register("Upcoming Approved", "9800000003", upcomingDOB)
	approve(upcomingApproved)

	// 1. Today's feed contains only the approved member born today
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodGet, "/api/members/birthdays/today", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	today := setup.ParseJSONArrayResponse(t, resp)
	require.Len(t, today, 1)
	require.Equal(t, "Birthday Approved", today[0].(map[string]interface{})["fullName"])

	// 2. Upcoming window includes today and the member three days out
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodGet, "/api/members/birthdays/upcoming?days=7", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, setup.ParseJSONArrayResponse(t, resp), 2)

	// 3. A window that excludes the upcoming birthday
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodGet, "/api/members/birthdays/upcoming?days=1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, setup.ParseJSONArrayResponse(t, resp), 1)

	// 4. Out-of-range window is rejected
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodGet, "/api/members/birthdays/upcoming?days=500", nil))
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)
}
