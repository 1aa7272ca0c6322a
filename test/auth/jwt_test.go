package auth

import (
	"testing"

	"Backend-AdmitHub/src/utils"
	"Backend-AdmitHub/test"

	"github.com/stretchr/testify/assert"
)

func TestJWT(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("JWT Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestGenerateAndParseRoundTrip", func(t *testing.T) {
		timer := test.NewTestTimer("Generate And Parse")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Generate And Parse", Duration: duration, Passed: true})
		}()

		token, err := utils.GenerateJWT("64f0c2a1b3d4e5f678901234", "admin@admithub.local", "Admin")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := utils.ParseJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "64f0c2a1b3d4e5f678901234", claims.UserID)
		assert.Equal(t, "admin@admithub.local", claims.Email)
		assert.Equal(t, "Admin", claims.Role)
		assert.NotNil(t, claims.ExpiresAt)
	})

	t.Run("TestRefreshTokenRoundTrip", func(t *testing.T) {
		timer := test.NewTestTimer("Refresh Token")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Refresh Token", Duration: duration, Passed: true})
		}()

		token, err := utils.GenerateRefreshJWT("64f0c2a1b3d4e5f678901234", "applicant@example.com", "Applicant")
		assert.NoError(t, err)

		claims, err := utils.ParseJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "Applicant", claims.Role)
	})

	t.Run("TestInvalidTokensRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Invalid Tokens")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Invalid Tokens", Duration: duration, Passed: true})
		}()

		_, err := utils.ParseJWT("")
		assert.Error(t, err)

		_, err = utils.ParseJWT("not.a.token")
		assert.Error(t, err)

		// token ที่เซ็นด้วย secret อื่นต้องไม่ผ่าน
		tampered := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
			"eyJ1c2VySWQiOiJ4IiwiZW1haWwiOiJ4QHguY29tIiwicm9sZSI6IkFkbWluIn0." +
			"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
		_, err = utils.ParseJWT(tampered)
		assert.Error(t, err)
	})
}
