package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/dhruvp2403/samajportal/tests/integration/setup"
	"github.com/stretchr/testify/require"
)

// TestAdminAuthFlow covers login, the protected route guard and logout.
func TestAdminAuthFlow(t *testing.T) {
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

	// 1. Wrong password is rejected
	badBody := []byte(fmt.Sprintf(`{"username":%q,"password":"not-the-password"}`, username))
	resp, err := app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/auth/login", badBody))
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)

	// 2. Protected routes reject requests without a token
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodGet, "/api/admin/members", nil))
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode)

	// 3. Correct credentials return a bearer token
	goodBody := []byte(fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/auth/login", goodBody))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	token := setup.GetAccessTokenFromResponse(t, resp)

	// 4. Token grants access to protected routes
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodGet, "/api/admin/members", nil, token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	// 5. Logout revokes the session
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodPost, "/api/admin/logout", nil, token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(setup.CreateAuthRequest(http.MethodGet, "/api/admin/members", nil, token))
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode, "revoked token should no longer work")
}

// TestDashboardAndAnnouncements seeds a small community and checks the
// aggregate view plus the announcement feed.
func TestDashboardAndAnnouncements(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	t.Log("=== Starting Test Infrastructure ===")
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

	// 1. Register two members, approve one
	registerBody := []byte(`{"fullName":"Prakash Jain","fatherName":"Dinesh Jain","gender":"male","mobile":"9822233344"}`)
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/members/register", registerBody))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	firstId := setup.ParseJSONResponse(t, resp)["id"].(string)

	registerBody = []byte(`{"fullName":"Rekha Jain","fatherName":"Dinesh Jain","gender":"female","mobile":"9833344455"}`)
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/members/register", registerBody))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(setup.CreateAuthRequest(http.MethodPatch, "/api/admin/members/"+firstId+"/status", []byte(`{"status":"approved"}`), token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	// 2. Post an approved greeting for the approved member
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/members/"+firstId+"/greetings", []byte(`{"senderName":"Vimal","message":"Welcome to the community"}`)))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	// 3. Publish announcements
	t.Log("=== Publishing Announcements ===")
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodPost, "/api/admin/announcements", []byte(`{"type":"celebratory","title":"Annual gathering","body":"Save the date"}`), token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(setup.CreateAuthRequest(http.MethodPost, "/api/admin/announcements", []byte(`{"type":"general","title":"New office hours"}`), token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	// Unknown type is rejected
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodPost, "/api/admin/announcements", []byte(`{"type":"party","title":"nope"}`), token))
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)

	// 4. Public announcement feed, optionally filtered by type
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodGet, "/api/announcements", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	require.Len(t, setup.ParseJSONArrayResponse(t, resp), 2)

	resp, err = app.Test(setup.CreateJSONRequest(http.MethodGet, "/api/announcements?type=celebratory", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	celebratory := setup.ParseJSONArrayResponse(t, resp)
	require.Len(t, celebratory, 1)
	require.Equal(t, "Annual gathering", celebratory[0].(map[string]interface{})["title"])

	// 5. Dashboard aggregates everything
	t.Log("=== Checking Dashboard Summary ===")
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodGet, "/api/admin/dashboard", nil, token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	summary := setup.ParseJSONResponse(t, resp)
	memberStats := summary["memberStats"].(map[string]interface{})
	require.EqualValues(t, 2, memberStats["total"])
	require.EqualValues(t, 1, memberStats["approved"])
	require.EqualValues(t, 1, memberStats["pending"])
	require.EqualValues(t, 2, summary["announcementCount"])
	require.EqualValues(t, 1, summary["recentGreetingCount"])
	require.EqualValues(t, 0, summary["todaysBirthdayCount"])
}
