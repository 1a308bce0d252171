package setup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TruncateAllTables truncates all tables in correct order (children first, then parents)
func TruncateAllTables(t *testing.T, db *pgxpool.Pool, ctx context.Context) {
	t.Log("Truncating all database tables...")

	tables := []string{
		// Child tables first
		"greetings",
		"announcements",
		// Parent tables
		"members",
		"admins",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}

	t.Log("All database tables truncated successfully")
}

// SeedAdmin inserts an admin account directly and returns its id and the
// plaintext password for use with the login endpoint.
func SeedAdmin(t *testing.T, db *pgxpool.Pool, ctx context.Context) (uuid.UUID, string, string) {
	adminId := uuid.New()
	username := "admin_" + GenerateRandomString(8)
	password := "test-password-" + GenerateRandomString(8)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err, "failed to hash admin password")

	_, err = db.Exec(ctx,
		"INSERT INTO admins (id, username, full_name, password, create_datetime) VALUES ($1,$2,$3,$4,$5)",
		adminId, username, "Test Admin", string(hash), time.Now().UTC())
	require.NoError(t, err, "failed to seed admin account")

	return adminId, username, password
}

// CreateTestWebPImage creates a minimal valid WebP image for testing
// This is a 1x1 pixel transparent WebP image in VP8L format
func CreateTestWebPImage(t *testing.T) []byte {
	// Minimal valid WebP VP8L header for a 1x1 transparent image
	// RIFF + WEBP + VP8L chunk
	webpData := []byte{
		// "RIFF"
		0x52, 0x49, 0x46, 0x46,
		// File size (little endian)
		0x1A, 0x00, 0x00, 0x00,
		// "WEBP"
		0x57, 0x45, 0x42, 0x50,
		// "VP8L"
		0x56, 0x50, 0x38, 0x4C,
		// Chunk size (little endian)
		0x18, 0x00, 0x00, 0x00,
		// VP8L data: 1x1 image, no alpha, version 1
		0x2F, 0x07, 0x10, 0x58,
		// Rest of VP8L data (green pixel)
		0x58, 0x10, 0x00, 0x00,
	}

	return webpData
}

// CreateMultipartFormData creates multipart form data for file upload requests
func CreateMultipartFormData(t *testing.T, fieldName, fileName string, fileData []byte, fields map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if fieldName != "" {
		part, err := writer.CreateFormFile(fieldName, fileName)
		require.NoError(t, err, "failed to create form file field")

		_, err = part.Write(fileData)
		require.NoError(t, err, "failed to write file data")
	}

	for key, value := range fields {
		err := writer.WriteField(key, value)
		require.NoError(t, err, "failed to write form field %s", key)
	}

	err := writer.Close()
	require.NoError(t, err, "failed to close multipart writer")

	contentType := writer.FormDataContentType()
	return body, contentType
}

// CreateJSONRequest creates a test request with JSON body
func CreateJSONRequest(method, url string, jsonBody []byte) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// CreateAuthRequest creates a test request with JSON body and Authorization header
func CreateAuthRequest(method, url string, jsonBody []byte, token string) *http.Request {
	req := CreateJSONRequest(method, url, jsonBody)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return req
}

// CreateAuthMultipartRequest creates a test request with multipart body and Authorization header
func CreateAuthMultipartRequest(method, url string, body *bytes.Buffer, contentType string, token string) *http.Request {
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return req
}

// ParseJSONResponse helper to parse JSON response body
func ParseJSONResponse(t *testing.T, resp *http.Response) map[string]interface{} {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NotEmpty(t, body, "response body should not be empty")

	var result map[string]interface{}
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to parse JSON response")

	return result
}

// ParseJSONArrayResponse parses a response whose top level is a JSON array
func ParseJSONArrayResponse(t *testing.T, resp *http.Response) []interface{} {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.NotEmpty(t, body, "response body should not be empty")

	var result []interface{}
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to parse JSON array response")

	return result
}

// GetAccessTokenFromResponse extracts access token from login response
func GetAccessTokenFromResponse(t *testing.T, resp *http.Response) string {
	result := ParseJSONResponse(t, resp)

	accessToken, ok := result["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")
	require.NotEmpty(t, accessToken, "accessToken should not be empty")

	return accessToken
}

// GenerateRandomString generates a random string of specified length
// Uses lowercase letters and numbers for test data generation
func GenerateRandomString(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		// #nosec G404 -- Weak randomness is acceptable for non-security test data
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"` // Param only present for validation errors
}

// ParseErrorMessage extracts error message from error response
func ParseErrorMessage(t *testing.T, result map[string]interface{}) string {
	errResp := ParseErrorResponse(t, result)
	return errResp.Message
}

// ParseErrorDetail extracts complete error details (code, message, param)
func ParseErrorDetail(t *testing.T, result map[string]interface{}) (code, message, param string) {
	errResp := ParseErrorResponse(t, result)
	return errResp.Code, errResp.Message, errResp.Param
}

// ParseErrorResponse parses error response into ErrorResponse struct
func ParseErrorResponse(t *testing.T, result map[string]interface{}) ErrorResponse {
	require.Contains(t, result, "error", "response should contain error field")

	errObj, ok := result["error"].(map[string]interface{})
	require.True(t, ok, "error field should be an object")

	errResp := ErrorResponse{}

	if code, ok := errObj["code"].(string); ok {
		errResp.Code = code
	}

	if message, ok := errObj["message"].(string); ok {
		errResp.Message = message
	}

	if param, ok := errObj["param"].(string); ok {
		errResp.Param = param
	}

	return errResp
}
