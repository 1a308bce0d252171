package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/dhruvp2403/samajportal/tests/integration/setup"
	"github.com/stretchr/testify/require"
)

// TestGreetingModeration covers the public greeting feed: clean greetings
// publish immediately, deny-listed greetings are stored but held back, and
// the moderation decision is frozen at submit time.
func TestGreetingModeration(t *testing.T) {
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

	// 1. Register a member to greet
	registerBody := []byte(`{"fullName":"Sunita Devi","fatherName":"Mohan Lal","gender":"female","mobile":"9811122233"}`)
	resp, err := app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/members/register", registerBody))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	member := setup.ParseJSONResponse(t, resp)
	memberId := member["id"].(string)
	greetingsURL := "/api/members/" + memberId + "/greetings"

	// 2. Clean greeting publishes immediately
	t.Log("=== Submitting Clean Greeting ===")
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, greetingsURL, []byte(`{"senderName":"Kavita","message":"Happy birthday!"}`)))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	clean := setup.ParseJSONResponse(t, resp)
	require.Equal(t, true, clean["accepted"])

	// 3. Deny-listed greeting is held back (denylist contains "spam")
	t.Log("=== Submitting Flagged Greeting ===")
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, greetingsURL, []byte(`{"senderName":"Mallory","message":"This is SPAM content"}`)))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	flagged := setup.ParseJSONResponse(t, resp)
	require.Equal(t, false, flagged["accepted"])

	// 4. Both rows exist, only the clean one is in the public feed
	var stored int
	err = db.QueryRow(ctx, "SELECT COUNT(*) FROM greetings WHERE member_id=$1", memberId).Scan(&stored)
	require.NoError(t, err)
	require.Equal(t, 2, stored, "flagged greetings are persisted too")

	resp, err = app.Test(setup.CreateJSONRequest(http.MethodGet, greetingsURL, nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	feed := setup.ParseJSONArrayResponse(t, resp)
	require.Len(t, feed, 1)
	entry := feed[0].(map[string]interface{})
	require.Equal(t, "Happy birthday!", entry["message"])

	// 5. Count matches the public feed, not the stored rows
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodGet, greetingsURL+"/count", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	count := setup.ParseJSONResponse(t, resp)
	require.EqualValues(t, 1, count["count"])

	// 6. Blank sender or message is rejected
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, greetingsURL, []byte(`{"senderName":"   ","message":"hi"}`)))
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, greetingsURL, []byte(`{"senderName":"Asha","message":""}`)))
	require.NoError(t, err)
	require.Equal(t, 400, resp.StatusCode)

	// 7. Greeting an unknown member is a 404
	resp, err = app.Test(setup.CreateJSONRequest(http.MethodPost, "/api/members/7f8899aa-bbcc-4dde-8eff-001122334455/greetings", []byte(`{"senderName":"Asha","message":"hello"}`)))
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode)
}
