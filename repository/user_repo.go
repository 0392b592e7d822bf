package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"projectview/dto"
	"projectview/models"
	"projectview/utils"
)

// UserRepository handles account storage and the authentication flows. The
// token manager is injected so the signing secret is explicit configuration
// rather than ambient state.
type UserRepository struct {
	db  *gorm.DB
	jwt *utils.JWTManager
	log *logrus.Logger
}

func NewUserRepository(db *gorm.DB, jwt *utils.JWTManager, log *logrus.Logger) *UserRepository {
	if log == nil {
		log = logrus.New()
	}
	return &UserRepository{db: db, jwt: jwt, log: log}
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, bool) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func (r *UserRepository) Exists(id uuid.UUID) bool {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

// IsUnique reports whether no account claims the username yet. Usernames
// are compared case-insensitively, matching the login lookup.
func (r *UserRepository) IsUnique(username string) bool {
	var count int64
	if err := r.db.Model(&models.User{}).Where("LOWER(user_name) = LOWER(?)", username).Count(&count).Error; err != nil {
		return false
	}
	return count == 0
}

// Register stores a new account with a bcrypt hash of the password. The
// caller checks username uniqueness beforehand.
func (r *UserRepository) Register(req dto.RegisterRequest) (*dto.UserDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "User"
	}

	user := models.User{
		UserName: req.UserName,
		FullName: req.FullName,
		Role:     role,
		Password: string(hash),
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}

	out := dto.ToUserDTO(user)
	return &out, nil
}

// Login verifies the credentials and issues a signed bearer token. Unknown
// usernames and wrong passwords both yield (nil, nil), never an error, so
// the handler can answer 401 without leaking which part failed.
func (r *UserRepository) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	var user models.User
	err := r.db.First(&user, "LOWER(user_name) = LOWER(?)", req.UserName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, nil
	}

	token, err := r.jwt.Generate(user.UserName)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User:  user.UserName,
		Role:  user.Role,
		Token: token,
	}, nil
}

// Update replaces username, full name and role unconditionally; the
// password only when a non-empty replacement is supplied.
func (r *UserRepository) Update(id uuid.UUID, req dto.UserUpdateRequest) bool {
	fields := map[string]interface{}{
		"user_name": req.UserName,
		"full_name": req.FullName,
		"role":      req.Role,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			r.log.WithError(err).Error("Failed to hash replacement password")
			return false
		}
		fields["password"] = string(hash)
	}

	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		r.log.WithError(res.Error).Error("Failed to update user")
		return false
	}
	return res.RowsAffected > 0
}

func (r *UserRepository) Delete(id uuid.UUID) bool {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		r.log.WithError(res.Error).Error("Failed to delete user")
		return false
	}
	return res.RowsAffected > 0
}

// GetByUsername backs the auth middleware's user lookup.
func (r *UserRepository) GetByUsername(username string) (*models.User, bool) {
	var user models.User
	if err := r.db.First(&user, "LOWER(user_name) = LOWER(?)", username).Error; err != nil {
		return nil, false
	}
	return &user, true
}
