package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/dhruvp2403/samajportal/tests/integration/setup"
	"github.com/stretchr/testify/require"
)

// TestHealthCheck tests the health check endpoint
func TestHealthCheck(t *testing.T) {
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

	app, _, _, _ := setup.SetupTestApp(t, infra.PgURL, infra.RedisURL, infra.MinioURL)

	req := setup.CreateJSONRequest(http.MethodGet, "/api/health", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
}

// TestMemberLifecycle covers registration, moderation of registration status
// by an admin, the approval audit trail, and deletion.
func TestMemberLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	t.Log("=== Starting Test Infrastructure ===")
	infra, err := setup.StartInfra(ctx, t)
	require.NoError(t, err)

	t.Cleanup(func() {
		t.Log("=== Cleaning Up Test Infrastructure ===")
		_ = infra.Terminate(ctx, t)
	})

	t.Log("=== Running Database Migrations ===")
	err = setup.RunMigration(infra.PgURL, t)
	require.NoError(t, err)

	t.Log("=== Setting Up Test Application ===")
	app, db, _, _ := setup.SetupTestApp(t, infra.PgURL, infra.RedisURL, infra.MinioURL)

	t.Cleanup(func() {
		setup.TruncateAllTables(t, db, ctx)
	})

	adminId, username, password := setup.SeedAdmin(t, db, ctx)

	// 1. Login as admin
	t.Log("=== Logging In As Admin ===")
	loginBody := []byte(fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	resp, err := app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/auth/login", loginBody))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	token := setup.GetAccessTokenFromResponse(t, resp)

	// 2. Register a member, expect pending status
	t.Log("=== Registering Member ===")
	registerBody := []byte(`{
		"fullName": "Ramesh Sharma",
		"fatherName": "Suresh Sharma",
		"gender": "male",
		"mobile": "9876543210",
		"dateOfBirth": "1985-06-15",
		"city": "Jaipur",
		"pincode": "302001"
	}`)
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/members/register", registerBody))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	member := setup.ParseJSONResponse(t, resp)
	memberId, ok := member["id"].(string)
	require.True(t, ok, "member id should be a string")
	require.Equal(t, "pending", member["registrationStatus"])
	require.Equal(t, "Not specified", member["qualification"], "qualification should default")
	require.Equal(t, "Unknown", member["bloodGroup"], "blood group should default")

	// 3. Stats should show the pending member
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodGet, "/api/admin/members/stats", nil, token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	stats := setup.ParseJSONResponse(t, resp)
	require.EqualValues(t, 1, stats["total"])
	require.EqualValues(t, 1, stats["pending"])
	require.EqualValues(t, 0, stats["approved"])

	// 4. Approve the member, audit fields must be stamped
	t.Log("=== Approving Member ===")
	statusURL := "/api/admin/members/" + memberId + "/status"
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodPatch, statusURL, []byte(`{"status":"approved"}`), token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	approved := setup.ParseJSONResponse(t, resp)
	require.Equal(t, "approved", approved["registrationStatus"])
	require.Equal(t, adminId.String(), approved["approvedBy"])
	require.NotEmpty(t, approved["approvedAt"])

	// 5. Move back to pending, audit fields must be cleared
	t.Log("=== Reverting Member To Pending ===")
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodPatch, statusURL, []byte(`{"status":"pending"}`), token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	reverted := setup.ParseJSONResponse(t, resp)
	require.Equal(t, "pending", reverted["registrationStatus"])
	require.NotContains(t, reverted, "approvedBy", "approval audit should be cleared")
	require.NotContains(t, reverted, "approvedAt", "approval audit should be cleared")

	// 6. Unknown status is rejected
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodPatch, statusURL, []byte(`{"status":"archived"}`), token))
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)

	// 7. Status update for a missing member is a 404
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodPatch, "/api/admin/members/7f8899aa-bbcc-4dde-8eff-001122334455/status", []byte(`{"status":"approved"}`), token))
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode)

	// 8. Delete the member along with its greetings
	t.Log("=== Deleting Member ===")
	greetingBody := []byte(`{"senderName":"Meena","message":"Congratulations on joining!"}`)
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/members/"+memberId+"/greetings", greetingBody))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(setup.CreateAuthRequest(http.MethodDelete, "/api/admin/members/"+memberId, nil, token))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var orphanedGreetings int
	err = db.QueryRow(ctx, "SELECT COUNT(*) FROM greetings WHERE member_id=$1", memberId).Scan(&orphanedGreetings)
	require.NoError(t, err)
	require.Equal(t, 0, orphanedGreetings, "greetings should be removed with the member")

	// 9. Deleting again reports not found
	resp, err = app.Test(setup.CreateAuthRequest(http.MethodDelete, "/api/admin/members/"+memberId, nil, token))
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode)
}

// TestMemberRegistrationValidation checks the request validation surface
func TestMemberRegistrationValidation(t *testing.T) {
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

	testCases := []struct {
		name string
		body string
	}{
		{"missing full name", `{"fatherName":"X Y","gender":"male","mobile":"9876543210"}`},
		{"bad gender", `{"fullName":"A B","fatherName":"X Y","gender":"robot","mobile":"9876543210"}`},
		{"short mobile", `{"fullName":"A B","fatherName":"X Y","gender":"male","mobile":"12345"}`},
		{"bad date of birth", `{"fullName":"A B","fatherName":"X Y","gender":"male","mobile":"9876543210","dateOfBirth":"15-06-1985"}`},
		{"bad pincode", `{"fullName":"A B","fatherName":"X Y","gender":"male","mobile":"9876543210","pincode":"abc"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/members/register", []byte(tc.body)))
			require.NoError(t, err)
			require.Equal(t, 400, resp.StatusCode)

			result := setup.ParseJSONResponse(t, resp)
			code, _, _ := setup.ParseErrorDetail(t, result)
			require.Equal(t, "VALIDATION_ERROR", code)
		})
	}
}
