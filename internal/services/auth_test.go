package services

import (
	"testing"
	"time"

	"github.com/Aysaleh/player-app/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type AuthServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewAuthService(s.db, testSecret)
}

func (s *AuthServiceSuite) TestRegisterIssuesValidToken() {
	user, token, err := s.service.Register("alice@example.com", "secret1")
	s.Require().NoError(err)
	s.NotEmpty(token)

	userID, email, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal(user.ID, userID)
	s.Equal("alice@example.com", email)
}

func (s *AuthServiceSuite) TestRegisterNormalizesEmail() {
	user, _, err := s.service.Register("  Alice@Example.COM ", "secret1")
	s.Require().NoError(err)
	s.Equal("alice@example.com", user.Email)
}

func (s *AuthServiceSuite) TestRegisterStoresHashNotPlaintext() {
	user, _, err := s.service.Register("alice@example.com", "secret1")
	s.Require().NoError(err)

	var stored models.User
	s.Require().NoError(s.db.First(&stored, user.ID).Error)
	s.NotEqual("secret1", stored.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func (s *AuthServiceSuite) TestRegisterDuplicateEmail() {
	_, _, err := s.service.Register("alice@example.com", "secret1")
	s.Require().NoError(err)

	_, _, err = s.service.Register(" ALICE@example.com ", "another6")
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *AuthServiceSuite) TestLoginSucceeds() {
	registered, _, err := s.service.Register("alice@example.com", "secret1")
	s.Require().NoError(err)

	user, token, err := s.service.Login("Alice@example.com", "secret1")
	s.Require().NoError(err)
	s.Equal(registered.ID, user.ID)
	s.NotEmpty(token)
}

func (s *AuthServiceSuite) TestLoginFailuresAreIndistinguishable() {
	_, _, err := s.service.Register("alice@example.com", "secret1")
	s.Require().NoError(err)

	_, _, wrongPassword := s.service.Login("alice@example.com", "not-the-password")
	_, _, unknownEmail := s.service.Login("nobody@example.com", "secret1")

	s.ErrorIs(wrongPassword, ErrInvalidCredentials)
	s.ErrorIs(unknownEmail, ErrInvalidCredentials)
	s.Equal(wrongPassword.Error(), unknownEmail.Error())
}

func (s *AuthServiceSuite) TestValidateTokenRejectsGarbage() {
	_, _, err := s.service.ValidateToken("not-a-token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *AuthServiceSuite) TestValidateTokenRejectsWrongSecret() {
	other := NewAuthService(s.db, "some-other-secret")
	user, _, err := other.Register("alice@example.com", "secret1")
	s.Require().NoError(err)

	token, err := other.GenerateToken(user)
	s.Require().NoError(err)

	_, _, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *AuthServiceSuite) TestValidateTokenRejectsExpired() {
	claims := jwt.MapClaims{
		"user_id": 1,
		"email":   "alice@example.com",
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	s.Require().NoError(err)

	_, _, err = s.service.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *AuthServiceSuite) TestGetUserMissingRow() {
	_, err := s.service.GetUser(12345)
	s.ErrorIs(err, ErrInvalidToken)
}
