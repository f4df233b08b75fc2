package services

import (
	"context"
	"testing"
	"time"

	"contactbox/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  AuthService
}

const testJWTSecret = "test-signing-secret"

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockUserRepository{}
	suite.service = NewAuthService(suite.mockRepo, testJWTSecret)

	suite.mockRepo.Test(suite.T())
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func storedUser(suite *AuthServiceTestSuite, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	assert.NoError(suite.T(), err)
	return &models.User{
		ID:           uuid.New(),
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := storedUser(suite, "secret1")

	suite.mockRepo.On("GetByEmail", ctx, "ana@example.com").Return(user, nil)

	result, err := suite.service.Login(ctx, "ana@example.com", "secret1")
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), result.Token)
	assert.Equal(suite.T(), user.ID, result.User.ID)
	assert.Equal(suite.T(), "ana@example.com", result.User.Email)
	assert.Equal(suite.T(), "Ana", result.User.Name)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, pgx.ErrNoRows)

	result, err := suite.service.Login(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
	assert.Nil(suite.T(), result)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := storedUser(suite, "secret1")

	suite.mockRepo.On("GetByEmail", ctx, "ana@example.com").Return(user, nil)

	result, err := suite.service.Login(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
	assert.Nil(suite.T(), result)
}

func (suite *AuthServiceTestSuite) TestRegister_HashesPassword() {
	ctx := context.Background()

	suite.mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Run(func(args mock.Arguments) {
		user := args.Get(1).(*models.User)
		assert.NotEqual(suite.T(), "secret1", user.PasswordHash)
		assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
		assert.NotEqual(suite.T(), uuid.Nil, user.ID)
	})

	user, err := suite.service.Register(ctx, "Ana", "ana@example.com", "secret1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Ana", user.Name)
	assert.Equal(suite.T(), "ana@example.com", user.Email)
}

func (suite *AuthServiceTestSuite) TestRegister_DistinctSaltPerHash() {
	ctx := context.Background()
	var hashes []string

	suite.mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Run(func(args mock.Arguments) {
		hashes = append(hashes, args.Get(1).(*models.User).PasswordHash)
	}).Twice()

	_, err := suite.service.Register(ctx, "Ana", "ana@example.com", "secret1")
	assert.NoError(suite.T(), err)
	_, err = suite.service.Register(ctx, "Bea", "bea@example.com", "secret1")
	assert.NoError(suite.T(), err)

	assert.Len(suite.T(), hashes, 2)
	assert.NotEqual(suite.T(), hashes[0], hashes[1])
}

func (suite *AuthServiceTestSuite) TestGenerateToken_ClaimsAndExpiry() {
	user := &models.User{
		ID:    uuid.New(),
		Name:  "Ana",
		Email: "ana@example.com",
	}

	tokenString, err := suite.service.GenerateToken(user)
	assert.NoError(suite.T(), err)

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), token.Valid)
	assert.Equal(suite.T(), user.ID.String(), claims.UserID)
	assert.Equal(suite.T(), "ana@example.com", claims.Email)
	assert.Equal(suite.T(), "Ana", claims.Name)

	expiry := claims.ExpiresAt.Time
	assert.WithinDuration(suite.T(), time.Now().Add(time.Hour), expiry, time.Minute)
}

func (suite *AuthServiceTestSuite) TestGenerateToken_RejectsWrongSecret() {
	user := &models.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}

	tokenString, err := suite.service.GenerateToken(user)
	assert.NoError(suite.T(), err)

	_, err = jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(suite.T(), err)
}
