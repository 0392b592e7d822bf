package repository

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"projectview/dto"
	"projectview/utils"
)

func newUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewUserRepository(db, utils.NewJWTManager("test-secret"), testLogger()), mock
}

func TestUserRepositoryRegisterHashesPassword(t *testing.T) {
	repo, mock := newUserRepo(t)

	var storedPassword string
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users"`).
		WithArgs(sqlmock.AnyArg(), "Grace", "grace", "User", passwordCapture{&storedPassword}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user, err := repo.Register(dto.RegisterRequest{
		UserName: "grace",
		Password: "hunter2",
		FullName: "Grace",
	})
	require.NoError(t, err)
	assert.Equal(t, "grace", user.UserName)
	assert.Equal(t, "User", user.Role)

	// The stored value is a bcrypt hash of the plaintext, not the plaintext
	assert.NotEqual(t, "hunter2", storedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte("hunter2")))

	require.NoError(t, mock.ExpectationsWereMet())
}

// passwordCapture grabs the password argument so the hash can be inspected.
type passwordCapture struct {
	dest *string
}

func (pc passwordCapture) Match(v driver.Value) bool {
	s, ok := v.(string)
	if ok {
		*pc.dest = s
	}
	return ok
}

func TestUserRepositoryLoginSuccess(t *testing.T) {
	repo, mock := newUserRepo(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(user_name\) = LOWER\(\$1\)`).
		WithArgs("Grace", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "user_name", "role", "password"}).
			AddRow(id, "Grace Hopper", "grace", "Admin", string(hash)))

	issuedAt := time.Now()
	resp, err := repo.Login(dto.LoginRequest{UserName: "Grace", Password: "hunter2"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "grace", resp.User)
	assert.Equal(t, "Admin", resp.Role)

	// The token carries the username and expires 7 days from issuance
	claims, err := utils.NewJWTManager("test-secret").Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "grace", claims.Username)
	assert.Equal(t, utils.TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.WithinDuration(t, issuedAt.Add(utils.TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestUserRepositoryLoginWrongPassword(t *testing.T) {
	repo, mock := newUserRepo(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(user_name\) = LOWER\(\$1\)`).
		WithArgs("grace", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "user_name", "role", "password"}).
			AddRow(uuid.New(), "Grace Hopper", "grace", "Admin", string(hash)))

	resp, err := repo.Login(dto.LoginRequest{UserName: "grace", Password: "wrong"})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestUserRepositoryLoginUnknownUser(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE LOWER\(user_name\) = LOWER\(\$1\)`).
		WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "user_name", "role", "password"}))

	resp, err := repo.Login(dto.LoginRequest{UserName: "nobody", Password: "whatever"})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestUserRepositoryIsUniqueIsCaseInsensitive(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE LOWER\(user_name\) = LOWER\(\$1\)`).
		WithArgs("Alice").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// "alice" is taken, so "Alice" is not unique either
	assert.False(t, repo.IsUnique("Alice"))
}

func TestUserRepositoryUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	repo, mock := newUserRepo(t)

	id := uuid.New()
	mock.ExpectBegin()
	// Three columns only: the password is not touched
	mock.ExpectExec(`UPDATE "users" SET "full_name"=\$1,"role"=\$2,"user_name"=\$3 WHERE id = \$4`).
		WithArgs("Grace Hopper", "Admin", "grace", id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok := repo.Update(id, dto.UserUpdateRequest{
		UserName: "grace",
		FullName: "Grace Hopper",
		Role:     "Admin",
	})
	assert.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateRehashesNewPassword(t *testing.T) {
	repo, mock := newUserRepo(t)

	var storedPassword string
	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "full_name"=\$1,"password"=\$2,"role"=\$3,"user_name"=\$4 WHERE id = \$5`).
		WithArgs("Grace Hopper", passwordCapture{&storedPassword}, "Admin", "grace", id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok := repo.Update(id, dto.UserUpdateRequest{
		UserName: "grace",
		FullName: "Grace Hopper",
		Role:     "Admin",
		Password: "new-secret",
	})
	assert.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte("new-secret")))
}
